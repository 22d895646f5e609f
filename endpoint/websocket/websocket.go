/*
 * Copyright 2025 The VisionQL Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package websocket streams evaluations over one connection. The first
// frame carries the query document; it is validated once and every later
// frame is a runtime context evaluated against it. A document fault closes
// the connection, a runtime fault only fails its own frame.
package websocket

import (
	"net/http"

	"github.com/gofrs/uuid/v5"
	"github.com/gorilla/websocket"

	"github.com/visionql/visionql"
	"github.com/visionql/visionql/api/types"
	"github.com/visionql/visionql/utils/json"
)

// Endpoint upgrades HTTP requests and serves the evaluation stream.
type Endpoint struct {
	Config   types.Config
	Upgrader websocket.Upgrader
}

// New creates a websocket endpoint.
func New(config types.Config) *Endpoint {
	return &Endpoint{Config: config}
}

// result is the frame answered for every context payload.
type result struct {
	ID     string      `json:"id"`
	Result interface{} `json:"result,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// ServeHTTP upgrades the request and runs the document/context protocol
// until the peer closes the connection.
func (e *Endpoint) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := e.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer func() { _ = conn.Close() }()
	e.serve(conn)
}

func (e *Endpoint) serve(conn *websocket.Conn) {
	_, document, err := conn.ReadMessage()
	if err != nil {
		return
	}
	chain, group, err := visionql.Validate(e.Config, document)
	if err != nil {
		e.logf("websocket document rejected: %v", err)
		_ = conn.WriteJSON(result{Error: err.Error()})
		return
	}
	_ = conn.WriteJSON(map[string]interface{}{"valid": true})
	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}
		conn.WriteJSON(e.evaluate(chain, group, payload))
	}
}

func (e *Endpoint) evaluate(chain types.Chain, group types.Group, payload []byte) result {
	id := evaluationID()
	var context map[string]interface{}
	if err := json.Unmarshal(payload, &context); err != nil {
		return result{ID: id, Error: err.Error()}
	}
	var value interface{}
	var err error
	if chain != nil {
		value, err = visionql.EvaluateChain(e.Config, chain, context)
	} else {
		value, err = visionql.EvaluateGroup(e.Config, group, context)
	}
	if err != nil {
		e.logf("evaluation %s failed: %v", id, err)
		return result{ID: id, Error: err.Error()}
	}
	return result{ID: id, Result: value}
}

func (e *Endpoint) logf(format string, v ...interface{}) {
	if e.Config.Logger != nil {
		e.Config.Logger.Printf(format, v...)
	}
}

func evaluationID() string {
	id, err := uuid.NewV4()
	if err != nil {
		return ""
	}
	return id.String()
}
