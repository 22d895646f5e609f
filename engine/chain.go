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
	"fmt"

	"github.com/visionql/visionql/api/types"
)

// OperationsChain is a built operations chain: an ordered list of
// initialized operation stages. Once Validate succeeds the chain is
// immutable and safe to evaluate concurrently, one EvalContext per call.
type OperationsChain struct {
	config types.Config
	defs   []types.OperationDef
	stages []types.Operation
}

// BuildChain instantiates and initializes one operation stage per
// definition. Unknown type tags and malformed parameters reject the whole
// chain; nothing is partially built.
func BuildChain(config types.Config, defs []types.OperationDef) (*OperationsChain, error) {
	registry := operationRegistryOrDefault(config)
	stages := make([]types.Operation, 0, len(defs))
	for _, def := range defs {
		operation, err := registry.NewOperation(def.Type)
		if err != nil {
			return nil, types.NewSchemaError("unknown operation type %q", def.Type)
		}
		if err := operation.Init(config, withBuilders(config, def.Configuration)); err != nil {
			return nil, err
		}
		stages = append(stages, operation)
	}
	return &OperationsChain{config: config, defs: defs, stages: stages}, nil
}

// withBuilders copies a stage configuration and injects the nested-structure
// builders compound operations need during Init.
func withBuilders(config types.Config, configuration types.Configuration) types.Configuration {
	cfg := make(types.Configuration, len(configuration)+2)
	for k, v := range configuration {
		cfg[k] = v
	}
	b := &nestedBuilder{config: config}
	cfg[types.ConfigurationKeyChainBuilder] = b
	cfg[types.ConfigurationKeyGroupBuilder] = b
	return cfg
}

// nestedBuilder lets compound operations build their nested chains and
// groups with the same engine configuration as the enclosing chain.
type nestedBuilder struct {
	config types.Config
}

func (b *nestedBuilder) BuildChain(defs []types.OperationDef) (types.Chain, error) {
	return BuildChain(b.config, defs)
}

func (b *nestedBuilder) BuildGroup(def *types.StatementGroupDef) (types.Group, error) {
	return BuildGroup(b.config, def)
}

// InputKinds returns the kinds the first stage accepts. An empty chain is
// the identity transform and accepts anything.
func (c *OperationsChain) InputKinds() []types.Kind {
	if len(c.stages) == 0 {
		return types.WildcardKinds
	}
	return c.stages[0].InputKinds()
}

// OutputKinds returns the kinds the last stage produces.
func (c *OperationsChain) OutputKinds() []types.Kind {
	if len(c.stages) == 0 {
		return types.WildcardKinds
	}
	return c.stages[len(c.stages)-1].OutputKinds()
}

// Definition returns the operation definitions the chain was built from.
func (c *OperationsChain) Definition() []types.OperationDef {
	return c.defs
}

// Validate walks the chain once and checks that every stage can feed its
// successor, then recursively validates nested structures of compound
// stages. Any incompatibility rejects the whole chain.
func (c *OperationsChain) Validate() error {
	for i := 0; i < len(c.stages)-1; i++ {
		produced := c.stages[i].OutputKinds()
		accepted := c.stages[i+1].InputKinds()
		if !types.Compatible(produced, accepted) {
			detail := fmt.Sprintf("operation %s cannot feed %s",
				c.stages[i].Type(), c.stages[i+1].Type())
			return types.NewKindMismatchError(i+1, produced, accepted, detail)
		}
	}
	for _, stage := range c.stages {
		if compound, ok := stage.(types.CompoundOperation); ok {
			if err := compound.ValidateNested(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Evaluate applies every stage to the running value in order. A stage
// failure aborts the remaining stages; no partial result is returned.
func (c *OperationsChain) Evaluate(ctx *types.EvalContext, value interface{}) (interface{}, error) {
	current := value
	for _, stage := range c.stages {
		next, err := stage.Transform(ctx, current)
		if err != nil {
			return nil, err
		}
		current = next
	}
	return current, nil
}

// Destroy releases the resources of every stage.
func (c *OperationsChain) Destroy() {
	for _, stage := range c.stages {
		stage.Destroy()
	}
}

var _ types.Chain = (*OperationsChain)(nil)
