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
	"strings"

	"github.com/visionql/visionql/api/types"
)

func init() {
	Registry.Add(&StringToLowerCase{}, &StringToUpperCase{})
}

// StringToLowerCase lowercases the input string. Idempotent.
type StringToLowerCase struct {
}

func (x *StringToLowerCase) Type() string {
	return "StringToLowerCase"
}

func (x *StringToLowerCase) New() types.Operation {
	return &StringToLowerCase{}
}

func (x *StringToLowerCase) Init(config types.Config, configuration types.Configuration) error {
	return nil
}

func (x *StringToLowerCase) InputKinds() []types.Kind {
	return []types.Kind{types.KindString}
}

func (x *StringToLowerCase) OutputKinds() []types.Kind {
	return []types.Kind{types.KindString}
}

func (x *StringToLowerCase) Transform(ctx *types.EvalContext, value interface{}) (interface{}, error) {
	s, ok := value.(string)
	if !ok {
		return nil, types.NewOperationExecutionError(x.Type(), "expected string, got %T", value)
	}
	return strings.ToLower(s), nil
}

func (x *StringToLowerCase) Destroy() {
}

// StringToUpperCase uppercases the input string. Idempotent.
type StringToUpperCase struct {
}

func (x *StringToUpperCase) Type() string {
	return "StringToUpperCase"
}

func (x *StringToUpperCase) New() types.Operation {
	return &StringToUpperCase{}
}

func (x *StringToUpperCase) Init(config types.Config, configuration types.Configuration) error {
	return nil
}

func (x *StringToUpperCase) InputKinds() []types.Kind {
	return []types.Kind{types.KindString}
}

func (x *StringToUpperCase) OutputKinds() []types.Kind {
	return []types.Kind{types.KindString}
}

func (x *StringToUpperCase) Transform(ctx *types.EvalContext, value interface{}) (interface{}, error) {
	s, ok := value.(string)
	if !ok {
		return nil, types.NewOperationExecutionError(x.Type(), "expected string, got %T", value)
	}
	return strings.ToUpper(s), nil
}

func (x *StringToUpperCase) Destroy() {
}
