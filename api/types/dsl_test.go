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

package types

import (
	"encoding/json"
	"testing"

	"github.com/visionql/visionql/test/assert"
)

func TestOperationDefDecode(t *testing.T) {
	var def OperationDef
	err := json.Unmarshal([]byte(`{"type": "NumberRound", "decimal_digits": 2}`), &def)
	assert.Nil(t, err)
	assert.Equal(t, "NumberRound", def.Type)
	assert.Equal(t, 2.0, def.Configuration["decimal_digits"])
}

func TestOperationDefDecodeMissingType(t *testing.T) {
	var def OperationDef
	err := json.Unmarshal([]byte(`{"decimal_digits": 2}`), &def)
	assert.NotNil(t, err)
	_, ok := err.(*SchemaError)
	assert.True(t, ok)
}

func TestOperationsChainDefRoundTrip(t *testing.T) {
	doc := `{"operations": [{"type": "StringToLowerCase"}, {"type": "NumberRound", "decimal_digits": 2}]}`
	var def OperationsChainDef
	assert.Nil(t, json.Unmarshal([]byte(doc), &def))
	assert.Equal(t, 2, len(def.Operations))

	data, err := json.Marshal(def)
	assert.Nil(t, err)
	var again OperationsChainDef
	assert.Nil(t, json.Unmarshal(data, &again))
	assert.Equal(t, def, again)
}

func TestOperandDefStatic(t *testing.T) {
	var def OperandDef
	assert.Nil(t, json.Unmarshal([]byte(`{"type": "StaticOperand", "value": 0.5}`), &def))
	assert.Equal(t, OperandTypeStatic, def.Type)
	assert.Equal(t, 0.5, def.Value)

	// A null literal is still a present value.
	assert.Nil(t, json.Unmarshal([]byte(`{"type": "StaticOperand", "value": null}`), &def))
	assert.Nil(t, def.Value)

	err := json.Unmarshal([]byte(`{"type": "StaticOperand"}`), &def)
	assert.NotNil(t, err)
}

func TestOperandDefDynamicDefaultsName(t *testing.T) {
	var def OperandDef
	assert.Nil(t, json.Unmarshal([]byte(`{"type": "DynamicOperand"}`), &def))
	assert.Equal(t, DefaultOperandName, def.Name)

	assert.Nil(t, json.Unmarshal([]byte(`{"type": "DynamicOperand", "operand_name": "prediction"}`), &def))
	assert.Equal(t, "prediction", def.Name)
}

func TestOperandDefUnknownType(t *testing.T) {
	var def OperandDef
	err := json.Unmarshal([]byte(`{"type": "TernaryOperand"}`), &def)
	assert.NotNil(t, err)
}

func TestStatementGroupDefDefaults(t *testing.T) {
	doc := `{
		"statements": [
			{
				"type": "UnaryStatement",
				"operand": {"type": "DynamicOperand"},
				"operator": {"type": "Exists"}
			}
		]
	}`
	var def StatementGroupDef
	assert.Nil(t, json.Unmarshal([]byte(doc), &def))
	assert.Equal(t, GroupOperatorOr, def.Operator)
	assert.Equal(t, 1, len(def.Statements))
	assert.NotNil(t, def.Statements[0].Unary)
	assert.False(t, def.Statements[0].Unary.Negate)
}

func TestStatementGroupDefRejectsEmpty(t *testing.T) {
	var def StatementGroupDef
	err := json.Unmarshal([]byte(`{"operator": "AND", "statements": []}`), &def)
	assert.NotNil(t, err)
}

func TestStatementGroupDefRejectsUnknownOperator(t *testing.T) {
	var def StatementGroupDef
	err := json.Unmarshal([]byte(`{"operator": "XOR", "statements": [{"type": "UnaryStatement", "operand": {"type": "DynamicOperand"}, "operator": {"type": "Exists"}}]}`), &def)
	assert.NotNil(t, err)
}

func TestStatementDefNested(t *testing.T) {
	doc := `{
		"type": "StatementGroup",
		"operator": "AND",
		"statements": [
			{
				"type": "StatementGroup",
				"statements": [
					{
						"type": "BinaryStatement",
						"left_operand": {"type": "DynamicOperand"},
						"comparator": {"type": "=="},
						"right_operand": {"type": "StaticOperand", "value": "cat"}
					}
				]
			}
		]
	}`
	var def StatementGroupDef
	assert.Nil(t, json.Unmarshal([]byte(doc), &def))
	assert.Equal(t, StatementTypeGroup, def.Statements[0].Type)
	nested := def.Statements[0].Group
	assert.NotNil(t, nested)
	assert.Equal(t, StatementTypeBinary, nested.Statements[0].Type)
	assert.Equal(t, "==", nested.Statements[0].Binary.Comparator.Type)
}

func TestStatementDefUnknownType(t *testing.T) {
	var def StatementDef
	err := json.Unmarshal([]byte(`{"type": "TernaryStatement"}`), &def)
	assert.NotNil(t, err)
}

func TestParseOperationDefs(t *testing.T) {
	defs, err := ParseOperationDefs([]interface{}{
		map[string]interface{}{"type": "StringToLowerCase"},
		map[string]interface{}{"type": "NumberRound", "decimal_digits": 1.0},
	})
	assert.Nil(t, err)
	assert.Equal(t, 2, len(defs))
	assert.Equal(t, "NumberRound", defs[1].Type)
	assert.Equal(t, 1.0, defs[1].Configuration["decimal_digits"])

	_, err = ParseOperationDefs([]interface{}{map[string]interface{}{"decimal_digits": 1.0}})
	assert.NotNil(t, err)

	_, err = ParseOperationDefs("not a list")
	assert.NotNil(t, err)
}

func TestParseStatementGroupDef(t *testing.T) {
	def, err := ParseStatementGroupDef(map[string]interface{}{
		"operator": "AND",
		"statements": []interface{}{
			map[string]interface{}{
				"type":    "UnaryStatement",
				"operand": map[string]interface{}{"type": "DynamicOperand"},
				"operator": map[string]interface{}{
					"type": "(Sequence) is empty",
				},
			},
		},
	})
	assert.Nil(t, err)
	assert.Equal(t, GroupOperatorAnd, def.Operator)

	_, err = ParseStatementGroupDef(nil)
	assert.NotNil(t, err)
}
