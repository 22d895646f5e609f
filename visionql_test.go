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

package visionql

import (
	"errors"
	"testing"

	"github.com/visionql/visionql/api/types"
	"github.com/visionql/visionql/test/assert"
)

func TestValidateChainAndEvaluate(t *testing.T) {
	config := NewConfig()
	chain, err := ValidateChain(config, []byte(`{"operations": [{"type": "StringToLowerCase"}]}`))
	assert.Nil(t, err)

	result, err := EvaluateChain(config, chain, map[string]interface{}{"_": "HELLO"})
	assert.Nil(t, err)
	assert.Equal(t, "hello", result)
}

func TestValidateChainRejectsIncompatibleStages(t *testing.T) {
	_, err := ValidateChain(NewConfig(), []byte(`{"operations": [
		{"type": "ToBoolean"},
		{"type": "StringToLowerCase"}
	]}`))
	var mismatch *types.KindMismatchError
	assert.True(t, errors.As(err, &mismatch))
	assert.Equal(t, 1, mismatch.Stage)
}

func TestEvaluateChainRequiresDefaultBinding(t *testing.T) {
	config := NewConfig()
	chain, err := ValidateChain(config, []byte(`{"operations": [{"type": "StringToLowerCase"}]}`))
	assert.Nil(t, err)

	_, err = EvaluateChain(config, chain, map[string]interface{}{"other": "value"})
	var resolution *types.OperandResolutionError
	assert.True(t, errors.As(err, &resolution))
	assert.Equal(t, types.DefaultOperandName, resolution.Name)
}

func TestValidateGroupAndEvaluate(t *testing.T) {
	config := NewConfig()
	group, err := ValidateGroup(config, []byte(`{
		"operator": "OR",
		"statements": [
			{
				"type": "BinaryStatement",
				"left_operand": {"type": "DynamicOperand", "operand_name": "confidence"},
				"comparator": {"type": "(Number) >"},
				"right_operand": {"type": "StaticOperand", "value": 0.5}
			}
		]
	}`))
	assert.Nil(t, err)

	result, err := EvaluateGroup(config, group, map[string]interface{}{"confidence": 0.9})
	assert.Nil(t, err)
	assert.True(t, result)
}

func TestValidateDispatch(t *testing.T) {
	config := NewConfig()

	chain, group, err := Validate(config, []byte(`{"operations": [{"type": "SequenceLength"}]}`))
	assert.Nil(t, err)
	assert.NotNil(t, chain)
	assert.Nil(t, group)

	chain, group, err = Validate(config, []byte(`{
		"statements": [
			{
				"type": "UnaryStatement",
				"operand": {"type": "DynamicOperand"},
				"operator": {"type": "Exists"}
			}
		]
	}`))
	assert.Nil(t, err)
	assert.Nil(t, chain)
	assert.NotNil(t, group)

	_, _, err = Validate(config, []byte(`{"neither": true}`))
	var schema *types.SchemaError
	assert.True(t, errors.As(err, &schema))
}

func TestWithRandomSeedMakesDrawsReproducible(t *testing.T) {
	config := NewConfig(types.WithRandomSeed(7))
	chain, err := ValidateChain(config, []byte(`{"operations": [{"type": "RandomNumber"}]}`))
	assert.Nil(t, err)

	first, err := EvaluateChain(config, chain, map[string]interface{}{"_": nil})
	assert.Nil(t, err)
	second, err := EvaluateChain(config, chain, map[string]interface{}{"_": nil})
	assert.Nil(t, err)
	assert.Equal(t, first, second)
}

func TestRegisterCustomOperation(t *testing.T) {
	assert.Nil(t, RegisterOperation(&reverseOperation{}))
	defer func() {
		assert.Nil(t, UnregisterOperation("StringReverse"))
	}()

	config := NewConfig()
	chain, err := ValidateChain(config, []byte(`{"operations": [{"type": "StringReverse"}]}`))
	assert.Nil(t, err)

	result, err := EvaluateChain(config, chain, map[string]interface{}{"_": "cat"})
	assert.Nil(t, err)
	assert.Equal(t, "tac", result)
}

type reverseOperation struct {
}

func (o *reverseOperation) Type() string {
	return "StringReverse"
}

func (o *reverseOperation) New() types.Operation {
	return &reverseOperation{}
}

func (o *reverseOperation) Init(config types.Config, configuration types.Configuration) error {
	return nil
}

func (o *reverseOperation) InputKinds() []types.Kind {
	return []types.Kind{types.KindString}
}

func (o *reverseOperation) OutputKinds() []types.Kind {
	return []types.Kind{types.KindString}
}

func (o *reverseOperation) Transform(ctx *types.EvalContext, value interface{}) (interface{}, error) {
	s, ok := value.(string)
	if !ok {
		return nil, types.NewOperationExecutionError("StringReverse", "expected a string, got %T", value)
	}
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes), nil
}

func (o *reverseOperation) Destroy() {
}
