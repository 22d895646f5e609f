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

package engine

import (
	"github.com/visionql/visionql/api/types"
	"github.com/visionql/visionql/utils/json"
)

// JsonParser decodes and encodes query documents in their JSON form.
type JsonParser struct {
}

// DecodeOperationsChain parses an operations chain document. Decode
// failures surface as SchemaError; the document is rejected wholesale.
func (p *JsonParser) DecodeOperationsChain(dsl []byte) (types.OperationsChainDef, error) {
	var def types.OperationsChainDef
	if err := json.Unmarshal(dsl, &def); err != nil {
		return types.OperationsChainDef{}, schemaError(err)
	}
	return def, nil
}

// DecodeStatementGroup parses a statement group document.
func (p *JsonParser) DecodeStatementGroup(dsl []byte) (*types.StatementGroupDef, error) {
	var def types.StatementGroupDef
	if err := json.Unmarshal(dsl, &def); err != nil {
		return nil, schemaError(err)
	}
	return &def, nil
}

// EncodeOperationsChain renders a chain definition back to its document
// form, indented.
func (p *JsonParser) EncodeOperationsChain(def types.OperationsChainDef) ([]byte, error) {
	data, err := json.Marshal(def)
	if err != nil {
		return nil, err
	}
	return json.Format(data)
}

// EncodeStatementGroup renders a group definition back to its document
// form, indented.
func (p *JsonParser) EncodeStatementGroup(def *types.StatementGroupDef) ([]byte, error) {
	data, err := json.Marshal(def)
	if err != nil {
		return nil, err
	}
	return json.Format(data)
}

// schemaError normalizes decode failures to SchemaError, keeping ones the
// DSL unmarshalers already classified.
func schemaError(err error) error {
	if se, ok := err.(*types.SchemaError); ok {
		return se
	}
	return types.NewSchemaError("%v", err)
}
