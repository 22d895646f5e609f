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

package websocket

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"github.com/visionql/visionql"
	"github.com/visionql/visionql/test/assert"
)

func dial(t *testing.T) (*websocket.Conn, func()) {
	t.Helper()
	server := httptest.NewServer(New(visionql.NewConfig()))
	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	assert.Nil(t, err)
	return conn, func() {
		_ = conn.Close()
		server.Close()
	}
}

func TestStreamEvaluation(t *testing.T) {
	conn, done := dial(t)
	defer done()

	err := conn.WriteMessage(websocket.TextMessage,
		[]byte(`{"operations": [{"type": "StringToLowerCase"}]}`))
	assert.Nil(t, err)

	var accepted map[string]interface{}
	assert.Nil(t, conn.ReadJSON(&accepted))
	assert.Equal(t, true, accepted["valid"])

	assert.Nil(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"_": "HELLO"}`)))
	var first result
	assert.Nil(t, conn.ReadJSON(&first))
	assert.Equal(t, "hello", first.Result)
	assert.Equal(t, "", first.Error)

	// A runtime fault fails its own frame; the stream stays open.
	assert.Nil(t, conn.WriteMessage(websocket.TextMessage, []byte(`{}`)))
	var failed result
	assert.Nil(t, conn.ReadJSON(&failed))
	assert.NotEqual(t, "", failed.Error)

	assert.Nil(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"_": "AGAIN"}`)))
	var second result
	assert.Nil(t, conn.ReadJSON(&second))
	assert.Equal(t, "again", second.Result)
}

func TestStreamRejectsBadDocument(t *testing.T) {
	conn, done := dial(t)
	defer done()

	err := conn.WriteMessage(websocket.TextMessage,
		[]byte(`{"operations": [{"type": "Teleport"}]}`))
	assert.Nil(t, err)

	var rejected result
	assert.Nil(t, conn.ReadJSON(&rejected))
	assert.NotEqual(t, "", rejected.Error)

	// The server closes the connection after a document fault.
	_, _, err = conn.ReadMessage()
	assert.NotNil(t, err)
}

func TestStreamGroupDocument(t *testing.T) {
	conn, done := dial(t)
	defer done()

	err := conn.WriteMessage(websocket.TextMessage, []byte(`{
		"statements": [
			{
				"type": "UnaryStatement",
				"operand": {"type": "DynamicOperand", "operand_name": "prediction"},
				"operator": {"type": "Exists"}
			}
		]
	}`))
	assert.Nil(t, err)

	var accepted map[string]interface{}
	assert.Nil(t, conn.ReadJSON(&accepted))
	assert.Equal(t, true, accepted["valid"])

	assert.Nil(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"prediction": 1}`)))
	var verdict result
	assert.Nil(t, conn.ReadJSON(&verdict))
	assert.Equal(t, true, verdict.Result)
}
