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
	"github.com/visionql/visionql/utils/maps"
)

func init() {
	Registry.Add(&ToNumber{})
}

// Casting modes of ToNumber.
const (
	CastToInt   = "int"
	CastToFloat = "float"
)

// ToNumberConfiguration selects the casting mode.
type ToNumberConfiguration struct {
	CastTo string `mapstructure:"cast_to"`
}

// ToNumber casts a scalar to int or float. A source value that cannot be
// interpreted as a number fails the evaluation.
type ToNumber struct {
	Config ToNumberConfiguration
}

func (x *ToNumber) Type() string {
	return "ToNumber"
}

func (x *ToNumber) New() types.Operation {
	return &ToNumber{}
}

func (x *ToNumber) Init(config types.Config, configuration types.Configuration) error {
	if err := maps.Map2Struct(configuration, &x.Config); err != nil {
		return types.NewSchemaError("%s: %v", x.Type(), err)
	}
	switch x.Config.CastTo {
	case CastToInt, CastToFloat:
		return nil
	case "":
		return types.NewSchemaError("%s requires a cast_to parameter", x.Type())
	default:
		return types.NewSchemaError("%s: unknown cast_to mode %q", x.Type(), x.Config.CastTo)
	}
}

func (x *ToNumber) InputKinds() []types.Kind {
	return []types.Kind{
		types.KindString, types.KindBoolean,
		types.KindInteger, types.KindFloat, types.KindFloatZeroToOne,
	}
}

func (x *ToNumber) OutputKinds() []types.Kind {
	return types.NumberKinds
}

func (x *ToNumber) Transform(ctx *types.EvalContext, value interface{}) (interface{}, error) {
	if x.Config.CastTo == CastToInt {
		i, err := cast.ToIntE(value)
		if err != nil {
			return nil, &types.OperationExecutionError{Operation: x.Type(), Detail: "cast to int", Cause: err}
		}
		return i, nil
	}
	f, err := cast.ToFloat64E(value)
	if err != nil {
		return nil, &types.OperationExecutionError{Operation: x.Type(), Detail: "cast to float", Cause: err}
	}
	return f, nil
}

func (x *ToNumber) Destroy() {
}
