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

package operations

import (
	"github.com/visionql/visionql/api/types"
)

func init() {
	Registry.Add(&SequenceApply{})
}

// SequenceApply applies a nested operations chain to every element of a
// list independently, preserving order and length. A nested failure on any
// element aborts the whole operation.
type SequenceApply struct {
	chain types.Chain
}

func (x *SequenceApply) Type() string {
	return "SequenceApply"
}

func (x *SequenceApply) New() types.Operation {
	return &SequenceApply{}
}

func (x *SequenceApply) Init(config types.Config, configuration types.Configuration) error {
	raw, ok := configuration["operations"]
	if !ok {
		return types.NewSchemaError("%s requires an operations parameter", x.Type())
	}
	defs, err := types.ParseOperationDefs(raw)
	if err != nil {
		return err
	}
	builder, _ := types.NestedBuilders(configuration)
	if builder == nil {
		return types.NewSchemaError("%s must be built through the chain builder", x.Type())
	}
	chain, err := builder.BuildChain(defs)
	if err != nil {
		return err
	}
	x.chain = chain
	return nil
}

func (x *SequenceApply) InputKinds() []types.Kind {
	return []types.Kind{types.KindListOfValues}
}

func (x *SequenceApply) OutputKinds() []types.Kind {
	return []types.Kind{types.KindListOfValues}
}

func (x *SequenceApply) NestedInputKinds() []types.Kind {
	return types.WildcardKinds
}

func (x *SequenceApply) NestedOutputKinds() []types.Kind {
	return types.WildcardKinds
}

// ValidateNested checks the nested chain itself and that its boundary
// kinds stay within the declared nested kinds.
func (x *SequenceApply) ValidateNested() error {
	if err := x.chain.Validate(); err != nil {
		return err
	}
	if !types.Compatible(x.NestedInputKinds(), x.chain.InputKinds()) {
		return types.NewKindMismatchError(-1, x.NestedInputKinds(), x.chain.InputKinds(),
			"nested chain input is out of bounds for "+x.Type())
	}
	if !types.Compatible(x.chain.OutputKinds(), x.NestedOutputKinds()) {
		return types.NewKindMismatchError(-1, x.chain.OutputKinds(), x.NestedOutputKinds(),
			"nested chain output is out of bounds for "+x.Type())
	}
	return nil
}

func (x *SequenceApply) Transform(ctx *types.EvalContext, value interface{}) (interface{}, error) {
	list, ok := value.([]interface{})
	if !ok {
		return nil, types.NewOperationExecutionError(x.Type(), "expected list, got %T", value)
	}
	mapped := make([]interface{}, len(list))
	for i, element := range list {
		result, err := x.chain.Evaluate(ctx, element)
		if err != nil {
			return nil, err
		}
		mapped[i] = result
	}
	return mapped, nil
}

func (x *SequenceApply) Destroy() {
}

var _ types.CompoundOperation = (*SequenceApply)(nil)
