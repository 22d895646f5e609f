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
)

// Operand is a built value source for a predicate: a literal or a context
// lookup, optionally post-processed by an operations chain.
type Operand struct {
	static bool
	value  interface{}
	name   string
	chain  *OperationsChain
}

// BuildOperand builds an operand from its definition.
func BuildOperand(config types.Config, def types.OperandDef) (*Operand, error) {
	var chain *OperationsChain
	if len(def.Operations) > 0 {
		built, err := BuildChain(config, def.Operations)
		if err != nil {
			return nil, err
		}
		chain = built
	}
	switch def.Type {
	case types.OperandTypeStatic:
		return &Operand{static: true, value: def.Value, chain: chain}, nil
	case types.OperandTypeDynamic:
		name := def.Name
		if name == "" {
			name = types.DefaultOperandName
		}
		return &Operand{name: name, chain: chain}, nil
	default:
		return nil, types.NewSchemaError("unknown operand type %q", def.Type)
	}
}

// Resolve produces the operand's value for one evaluation: the literal for
// a static operand, the context binding for a dynamic one, then the
// operand's own chain applied to the result.
func (o *Operand) Resolve(ctx *types.EvalContext) (interface{}, error) {
	value := o.value
	if !o.static {
		bound, ok := ctx.Resolve(o.name)
		if !ok {
			return nil, &types.OperandResolutionError{Name: o.name}
		}
		value = bound
	}
	if o.chain != nil {
		return o.chain.Evaluate(ctx, value)
	}
	return value, nil
}

// outputKinds is what the operand is statically known to produce: its
// chain's output kinds, the literal's kind, or wildcard for a bare dynamic
// operand whose value is only known at runtime.
func (o *Operand) outputKinds() []types.Kind {
	if o.chain != nil {
		return o.chain.OutputKinds()
	}
	if o.static {
		return []types.Kind{types.KindOf(o.value)}
	}
	return types.WildcardKinds
}

func (o *Operand) validate() error {
	if o.chain != nil {
		return o.chain.Validate()
	}
	return nil
}

// Statement is one built predicate: a comparator application with an
// optional negation, or a nested group.
type Statement interface {
	Validate() error
	Evaluate(ctx *types.EvalContext) (bool, error)
}

type binaryStatement struct {
	left       *Operand
	comparator types.Comparator
	right      *Operand
	negate     bool
}

func (s *binaryStatement) Validate() error {
	if err := s.left.validate(); err != nil {
		return err
	}
	if err := s.right.validate(); err != nil {
		return err
	}
	operandKinds := s.comparator.OperandKinds()
	operands := []*Operand{s.left, s.right}
	for i, operand := range operands {
		produced := operand.outputKinds()
		if !types.Compatible(produced, operandKinds[i]) {
			return types.NewKindMismatchError(-1, produced, operandKinds[i],
				"operand "+ordinal(i)+" is incompatible with comparator "+s.comparator.Type())
		}
	}
	return nil
}

func (s *binaryStatement) Evaluate(ctx *types.EvalContext) (bool, error) {
	left, err := s.left.Resolve(ctx)
	if err != nil {
		return false, err
	}
	right, err := s.right.Resolve(ctx)
	if err != nil {
		return false, err
	}
	result, err := s.comparator.Compare(left, right)
	if err != nil {
		return false, err
	}
	return result != s.negate, nil
}

type unaryStatement struct {
	operand  *Operand
	operator types.Comparator
	negate   bool
}

func (s *unaryStatement) Validate() error {
	if err := s.operand.validate(); err != nil {
		return err
	}
	produced := s.operand.outputKinds()
	accepted := s.operator.OperandKinds()[0]
	if !types.Compatible(produced, accepted) {
		return types.NewKindMismatchError(-1, produced, accepted,
			"operand is incompatible with comparator "+s.operator.Type())
	}
	return nil
}

func (s *unaryStatement) Evaluate(ctx *types.EvalContext) (bool, error) {
	value, err := s.operand.Resolve(ctx)
	if err != nil {
		return false, err
	}
	result, err := s.operator.Compare(value, nil)
	if err != nil {
		return false, err
	}
	return result != s.negate, nil
}

// StatementGroup is a built group of statements combined with AND or OR.
// Evaluation runs strictly in declared order and short-circuits: AND stops
// at the first false child, OR at the first true child.
type StatementGroup struct {
	operator string
	children []Statement
}

// BuildGroup builds a statement group and its nested statements.
func BuildGroup(config types.Config, def *types.StatementGroupDef) (*StatementGroup, error) {
	if def == nil {
		return nil, types.NewSchemaError("statement group is required")
	}
	if len(def.Statements) == 0 {
		return nil, types.NewSchemaError("statement group must carry at least one statement")
	}
	operator := def.Operator
	switch operator {
	case "":
		operator = types.GroupOperatorOr
	case types.GroupOperatorAnd, types.GroupOperatorOr:
	default:
		return nil, types.NewSchemaError("unknown group operator %q", def.Operator)
	}
	children := make([]Statement, 0, len(def.Statements))
	for _, entry := range def.Statements {
		child, err := buildStatement(config, entry)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return &StatementGroup{operator: operator, children: children}, nil
}

func buildStatement(config types.Config, def types.StatementDef) (Statement, error) {
	switch def.Type {
	case types.StatementTypeBinary:
		comparator, err := buildComparator(config, def.Binary.Comparator, 2)
		if err != nil {
			return nil, err
		}
		left, err := BuildOperand(config, def.Binary.Left)
		if err != nil {
			return nil, err
		}
		right, err := BuildOperand(config, def.Binary.Right)
		if err != nil {
			return nil, err
		}
		return &binaryStatement{left: left, comparator: comparator, right: right, negate: def.Binary.Negate}, nil
	case types.StatementTypeUnary:
		operator, err := buildComparator(config, def.Unary.Operator, 1)
		if err != nil {
			return nil, err
		}
		operand, err := BuildOperand(config, def.Unary.Operand)
		if err != nil {
			return nil, err
		}
		return &unaryStatement{operand: operand, operator: operator, negate: def.Unary.Negate}, nil
	case types.StatementTypeGroup:
		return BuildGroup(config, def.Group)
	default:
		return nil, types.NewSchemaError("unknown statement type %q", def.Type)
	}
}

func buildComparator(config types.Config, def types.ComparatorDef, arity int) (types.Comparator, error) {
	registry := comparatorRegistryOrDefault(config)
	comparator, err := registry.NewComparator(def.Type)
	if err != nil {
		return nil, types.NewSchemaError("unknown comparator type %q", def.Type)
	}
	if err := comparator.Init(config, def.Configuration); err != nil {
		return nil, err
	}
	if comparator.OperandsNumber() != arity {
		return nil, types.NewSchemaError("comparator %q takes %d operands, statement supplies %d",
			def.Type, comparator.OperandsNumber(), arity)
	}
	return comparator, nil
}

// Validate type-checks every statement in the group, recursively.
func (g *StatementGroup) Validate() error {
	for _, child := range g.children {
		if err := child.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Evaluate combines the children with the group operator. A group with a
// single child behaves exactly as that child.
func (g *StatementGroup) Evaluate(ctx *types.EvalContext) (bool, error) {
	if g.operator == types.GroupOperatorAnd {
		for _, child := range g.children {
			ok, err := child.Evaluate(ctx)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		}
		return true, nil
	}
	for _, child := range g.children {
		ok, err := child.Evaluate(ctx)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

var _ types.Group = (*StatementGroup)(nil)

func ordinal(i int) string {
	if i == 0 {
		return "left"
	}
	return "right"
}
