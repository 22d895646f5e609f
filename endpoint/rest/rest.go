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

// Package rest exposes the query engine over HTTP. Hosts post a document
// to validate it, or a document plus a runtime context to evaluate it in
// one shot. Every evaluation response carries a uuid so log lines and
// responses correlate.
package rest

import (
	"errors"
	"io"
	"net/http"

	"github.com/gofrs/uuid/v5"
	"github.com/julienschmidt/httprouter"

	"github.com/visionql/visionql"
	"github.com/visionql/visionql/api/types"
	"github.com/visionql/visionql/utils/json"
)

const (
	ContentTypeKey  = "Content-Type"
	JsonContentType = "application/json"
)

// evaluateRequest is the body of the evaluate routes.
type evaluateRequest struct {
	Query   json.RawMessage        `json:"query"`
	Context map[string]interface{} `json:"context"`
}

// errorResponse names the error class so clients can branch without
// parsing messages.
type errorResponse struct {
	ID      string `json:"id,omitempty"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Endpoint serves the query routes. Addr is the listen address, the zero
// Config falls back to the default registries.
type Endpoint struct {
	Config types.Config
	Addr   string

	router *httprouter.Router
	server *http.Server
}

// New creates a REST endpoint with its routes installed.
func New(config types.Config, addr string) *Endpoint {
	e := &Endpoint{Config: config, Addr: addr}
	router := httprouter.New()
	router.POST("/v1/query/validate", e.handleValidate)
	router.POST("/v1/query/chain", e.handleChain)
	router.POST("/v1/query/group", e.handleGroup)
	e.router = router
	return e
}

// Router exposes the handler for embedding and for tests.
func (e *Endpoint) Router() *httprouter.Router {
	return e.router
}

// Start listens and serves until Shutdown or a listener error.
func (e *Endpoint) Start() error {
	e.server = &http.Server{Addr: e.Addr, Handler: e.router}
	e.logf("rest endpoint listening on %s", e.Addr)
	err := e.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Destroy closes the listener.
func (e *Endpoint) Destroy() {
	if e.server != nil {
		_ = e.server.Close()
	}
}

func (e *Endpoint) handleValidate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		e.writeError(w, "", err)
		return
	}
	if _, _, err := visionql.Validate(e.Config, body); err != nil {
		e.writeError(w, "", err)
		return
	}
	e.writeJSON(w, http.StatusOK, map[string]interface{}{"valid": true})
}

func (e *Endpoint) handleChain(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	id := evaluationID()
	req, ok := e.decodeEvaluateRequest(w, r, id)
	if !ok {
		return
	}
	chain, err := visionql.ValidateChain(e.Config, req.Query)
	if err != nil {
		e.writeError(w, id, err)
		return
	}
	result, err := visionql.EvaluateChain(e.Config, chain, req.Context)
	if err != nil {
		e.writeError(w, id, err)
		return
	}
	e.writeJSON(w, http.StatusOK, map[string]interface{}{"id": id, "result": result})
}

func (e *Endpoint) handleGroup(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	id := evaluationID()
	req, ok := e.decodeEvaluateRequest(w, r, id)
	if !ok {
		return
	}
	group, err := visionql.ValidateGroup(e.Config, req.Query)
	if err != nil {
		e.writeError(w, id, err)
		return
	}
	result, err := visionql.EvaluateGroup(e.Config, group, req.Context)
	if err != nil {
		e.writeError(w, id, err)
		return
	}
	e.writeJSON(w, http.StatusOK, map[string]interface{}{"id": id, "result": result})
}

func (e *Endpoint) decodeEvaluateRequest(w http.ResponseWriter, r *http.Request, id string) (evaluateRequest, bool) {
	var req evaluateRequest
	body, err := io.ReadAll(r.Body)
	if err == nil {
		err = json.Unmarshal(body, &req)
	}
	if err == nil && len(req.Query) == 0 {
		err = types.NewSchemaError("request has no query document")
	}
	if err != nil {
		e.writeError(w, id, types.NewSchemaError("%v", err))
		return req, false
	}
	return req, true
}

func (e *Endpoint) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set(ContentTypeKey, JsonContentType)
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func (e *Endpoint) writeError(w http.ResponseWriter, id string, err error) {
	status, class := classify(err)
	e.logf("evaluation %s failed: %s: %v", id, class, err)
	e.writeJSON(w, status, errorResponse{ID: id, Error: class, Message: err.Error()})
}

func (e *Endpoint) logf(format string, v ...interface{}) {
	if e.Config.Logger != nil {
		e.Config.Logger.Printf(format, v...)
	}
}

// classify maps the five error classes to HTTP statuses. Document faults
// are client errors, runtime faults are unprocessable, everything else is
// a server error.
func classify(err error) (int, string) {
	var schema *types.SchemaError
	var mismatch *types.KindMismatchError
	var rng *types.InvalidRangeError
	var resolution *types.OperandResolutionError
	var execution *types.OperationExecutionError
	switch {
	case errors.As(err, &schema):
		return http.StatusBadRequest, "SchemaError"
	case errors.As(err, &mismatch):
		return http.StatusBadRequest, "KindMismatchError"
	case errors.As(err, &rng):
		return http.StatusBadRequest, "InvalidRangeError"
	case errors.As(err, &resolution):
		return http.StatusUnprocessableEntity, "OperandResolutionError"
	case errors.As(err, &execution):
		return http.StatusUnprocessableEntity, "OperationExecutionError"
	default:
		return http.StatusInternalServerError, "InternalError"
	}
}

func evaluationID() string {
	id, err := uuid.NewV4()
	if err != nil {
		return ""
	}
	return id.String()
}
