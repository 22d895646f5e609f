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

import "sync"

// Configuration carries the variant-specific parameters of one decoded
// operation or comparator, exactly as they appeared in the document.
type Configuration map[string]interface{}

// Keys the chain builder injects into a compound operation's Configuration
// before Init. Components read them back through NestedBuilders.
const (
	ConfigurationKeyChainBuilder = "$chainBuilder"
	ConfigurationKeyGroupBuilder = "$groupBuilder"
)

// Group operator tags.
const (
	GroupOperatorAnd = "AND"
	GroupOperatorOr  = "OR"
)

// DefaultOperandName is the dynamic operand name meaning "the value
// currently flowing through evaluation".
const DefaultOperandName = "_"

// Operation is one variant of the closed operation catalog. Implementations
// are registered once and cloned with New for every chain stage; a stage
// instance is immutable after Init and safe for concurrent Transform calls.
type Operation interface {
	// New creates an unconfigured instance of this operation variant.
	New() Operation
	// Type is the document discriminator tag, e.g. "StringToLowerCase".
	Type() string
	// Init decodes the variant-specific parameters. It returns a
	// SchemaError when a required parameter is absent or malformed.
	Init(config Config, configuration Configuration) error
	// InputKinds lists the kinds this operation accepts.
	InputKinds() []Kind
	// OutputKinds lists the kinds this operation produces.
	OutputKinds() []Kind
	// Transform applies the operation to one runtime value.
	Transform(ctx *EvalContext, value interface{}) (interface{}, error)
	// Destroy releases resources held by the instance.
	Destroy()
}

// CompoundOperation is implemented by operation variants that carry nested
// operation chains or statement groups. The chain validator recursively
// validates the nested structure through this interface.
type CompoundOperation interface {
	Operation
	// NestedInputKinds lists the kinds the nested structure must accept.
	NestedInputKinds() []Kind
	// NestedOutputKinds lists the kinds the nested structure must produce.
	NestedOutputKinds() []Kind
	// ValidateNested type-checks the nested structure against the declared
	// nested kinds.
	ValidateNested() error
}

// Comparator is one variant of the closed comparator catalog. For unary
// comparators the right argument of Compare is always nil.
type Comparator interface {
	// New creates an unconfigured instance of this comparator variant.
	New() Comparator
	// Type is the document discriminator tag, e.g. "(Number) >".
	Type() string
	// Init decodes the variant-specific parameters, if any.
	Init(config Config, configuration Configuration) error
	// OperandsNumber is 1 for unary and 2 for binary comparators.
	OperandsNumber() int
	// OperandKinds lists the accepted kinds per operand position.
	OperandKinds() [][]Kind
	// Compare evaluates the predicate. It returns a KindMismatchError when
	// a runtime value falls outside the declared operand kinds.
	Compare(left, right interface{}) (bool, error)
}

// Chain is a validated operations chain, ready to evaluate.
type Chain interface {
	// InputKinds lists the kinds the first stage accepts. An empty chain
	// accepts anything.
	InputKinds() []Kind
	// OutputKinds lists the kinds the last stage produces.
	OutputKinds() []Kind
	// Validate type-checks every stage adjacency and all nested structures.
	Validate() error
	// Evaluate applies the stages to value in order.
	Evaluate(ctx *EvalContext, value interface{}) (interface{}, error)
}

// Group is a validated statement group, ready to evaluate.
type Group interface {
	// Validate type-checks every statement in the group.
	Validate() error
	// Evaluate combines the child statements with the group operator,
	// short-circuiting in declared order.
	Evaluate(ctx *EvalContext) (bool, error)
}

// ChainBuilder builds nested operation chains for compound operations.
type ChainBuilder interface {
	BuildChain(defs []OperationDef) (Chain, error)
}

// GroupBuilder builds nested statement groups for compound operations.
type GroupBuilder interface {
	BuildGroup(def *StatementGroupDef) (Group, error)
}

// OperationRegistry resolves operation discriminator tags to components.
type OperationRegistry interface {
	// Register adds an operation component. It fails if the type tag is
	// already taken.
	Register(operation Operation) error
	// Unregister removes an operation component by type tag.
	Unregister(operationType string) error
	// NewOperation creates a fresh instance of the named variant.
	NewOperation(operationType string) (Operation, error)
	// GetOperations lists all registered components by type tag.
	GetOperations() map[string]Operation
}

// ComparatorRegistry resolves comparator discriminator tags to components.
type ComparatorRegistry interface {
	Register(comparator Comparator) error
	Unregister(comparatorType string) error
	NewComparator(comparatorType string) (Comparator, error)
	GetComparators() map[string]Comparator
}

// SafeOperationSlice collects the operation components a package registers
// during init.
type SafeOperationSlice struct {
	components []Operation
	sync.Mutex
}

// Add appends components to the slice.
func (p *SafeOperationSlice) Add(operations ...Operation) {
	p.Lock()
	defer p.Unlock()
	p.components = append(p.components, operations...)
}

// Components returns the collected components.
func (p *SafeOperationSlice) Components() []Operation {
	p.Lock()
	defer p.Unlock()
	return p.components
}

// SafeComparatorSlice collects the comparator components a package registers
// during init.
type SafeComparatorSlice struct {
	components []Comparator
	sync.Mutex
}

// Add appends components to the slice.
func (p *SafeComparatorSlice) Add(comparators ...Comparator) {
	p.Lock()
	defer p.Unlock()
	p.components = append(p.components, comparators...)
}

// Components returns the collected components.
func (p *SafeComparatorSlice) Components() []Comparator {
	p.Lock()
	defer p.Unlock()
	return p.components
}

// NestedBuilders extracts the builder handles the chain builder injected
// into a compound operation's configuration.
func NestedBuilders(configuration Configuration) (ChainBuilder, GroupBuilder) {
	var cb ChainBuilder
	var gb GroupBuilder
	if v, ok := configuration[ConfigurationKeyChainBuilder]; ok {
		cb, _ = v.(ChainBuilder)
	}
	if v, ok := configuration[ConfigurationKeyGroupBuilder]; ok {
		gb, _ = v.(GroupBuilder)
	}
	return cb, gb
}
