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
	"github.com/visionql/visionql/utils/cast"
)

func init() {
	Registry.Add(&ToString{}, &ToBoolean{})
}

// ToString stringifies any value. Scalars format directly; structured
// values serialize to JSON. The operation is total.
type ToString struct {
}

func (x *ToString) Type() string {
	return "ToString"
}

func (x *ToString) New() types.Operation {
	return &ToString{}
}

func (x *ToString) Init(config types.Config, configuration types.Configuration) error {
	return nil
}

func (x *ToString) InputKinds() []types.Kind {
	return types.WildcardKinds
}

func (x *ToString) OutputKinds() []types.Kind {
	return []types.Kind{types.KindString}
}

func (x *ToString) Transform(ctx *types.EvalContext, value interface{}) (interface{}, error) {
	s, err := cast.ToStringE(value)
	if err != nil {
		return nil, &types.OperationExecutionError{Operation: x.Type(), Detail: "stringify", Cause: err}
	}
	return s, nil
}

func (x *ToString) Destroy() {
}

// ToBoolean turns a number into its truthiness: zero is false, everything
// else is true.
type ToBoolean struct {
}

func (x *ToBoolean) Type() string {
	return "ToBoolean"
}

func (x *ToBoolean) New() types.Operation {
	return &ToBoolean{}
}

func (x *ToBoolean) Init(config types.Config, configuration types.Configuration) error {
	return nil
}

func (x *ToBoolean) InputKinds() []types.Kind {
	return types.NumberKinds
}

func (x *ToBoolean) OutputKinds() []types.Kind {
	return []types.Kind{types.KindBoolean}
}

func (x *ToBoolean) Transform(ctx *types.EvalContext, value interface{}) (interface{}, error) {
	b, err := cast.ToBoolE(value)
	if err != nil {
		return nil, &types.OperationExecutionError{Operation: x.Type(), Detail: "expected number", Cause: err}
	}
	return b, nil
}

func (x *ToBoolean) Destroy() {
}
