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

// Package visionql is the facade of the query engine. Hosts decode a JSON
// query document once with ValidateChain or ValidateGroup, then evaluate
// the validated structure against as many runtime contexts as they like.
//
// A minimal round trip:
//
//	config := visionql.NewConfig()
//	chain, err := visionql.ValidateChain(config, []byte(`{"operations": [{"type": "StringToLowerCase"}]}`))
//	if err != nil {
//		// reject the document
//	}
//	result, err := visionql.EvaluateChain(config, chain, map[string]interface{}{"_": "HELLO"})
package visionql

import (
	"github.com/visionql/visionql/api/types"
	"github.com/visionql/visionql/engine"
	"github.com/visionql/visionql/utils/json"
)

// NewConfig creates an engine configuration backed by the default component
// registries.
func NewConfig(opts ...types.Option) types.Config {
	config := types.NewConfig(opts...)
	if config.Operations == nil {
		config.Operations = engine.Registry
	}
	if config.Comparators == nil {
		config.Comparators = engine.Comparators
	}
	return config
}

// ValidateChain decodes and type-checks an operations chain document. The
// returned chain is immutable and safe for concurrent evaluation.
func ValidateChain(config types.Config, dsl []byte) (types.Chain, error) {
	var parser engine.JsonParser
	def, err := parser.DecodeOperationsChain(dsl)
	if err != nil {
		return nil, err
	}
	chain, err := engine.BuildChain(config, def.Operations)
	if err != nil {
		return nil, err
	}
	if err := chain.Validate(); err != nil {
		return nil, err
	}
	return chain, nil
}

// ValidateGroup decodes and type-checks a statement group document.
func ValidateGroup(config types.Config, dsl []byte) (types.Group, error) {
	var parser engine.JsonParser
	def, err := parser.DecodeStatementGroup(dsl)
	if err != nil {
		return nil, err
	}
	group, err := engine.BuildGroup(config, def)
	if err != nil {
		return nil, err
	}
	if err := group.Validate(); err != nil {
		return nil, err
	}
	return group, nil
}

// Validate decodes and type-checks either document form, dispatching on the
// top-level key: "operations" marks a chain, "statements" a group. Exactly
// one of the results is non-nil on success.
func Validate(config types.Config, dsl []byte) (types.Chain, types.Group, error) {
	var probe map[string]interface{}
	if err := json.Unmarshal(dsl, &probe); err != nil {
		return nil, nil, types.NewSchemaError("%v", err)
	}
	if _, ok := probe["operations"]; ok {
		chain, err := ValidateChain(config, dsl)
		return chain, nil, err
	}
	if _, ok := probe["statements"]; ok {
		group, err := ValidateGroup(config, dsl)
		return nil, group, err
	}
	return nil, nil, types.NewSchemaError("document has neither operations nor statements")
}

// EvaluateChain runs a validated chain against one runtime context. The
// chain input is the binding of the default operand name "_"; its absence
// fails with OperandResolutionError before any stage runs.
func EvaluateChain(config types.Config, chain types.Chain, context map[string]interface{}) (interface{}, error) {
	ctx := config.NewEvalContext(context)
	input, ok := ctx.Resolve(types.DefaultOperandName)
	if !ok {
		return nil, &types.OperandResolutionError{Name: types.DefaultOperandName}
	}
	return chain.Evaluate(ctx, input)
}

// EvaluateGroup runs a validated statement group against one runtime
// context, yielding the group's boolean verdict.
func EvaluateGroup(config types.Config, group types.Group, context map[string]interface{}) (bool, error) {
	return group.Evaluate(config.NewEvalContext(context))
}
