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
	"math"

	"github.com/visionql/visionql/api/types"
	"github.com/visionql/visionql/utils/cast"
	"github.com/visionql/visionql/utils/maps"
)

func init() {
	Registry.Add(&NumberRound{})
}

// NumberRoundConfiguration sets how many decimal digits survive rounding.
type NumberRoundConfiguration struct {
	DecimalDigits int `mapstructure:"decimal_digits"`
}

// NumberRound rounds a number to the configured number of decimal digits
// using round-half-to-even. Zero digits produce an integer value.
type NumberRound struct {
	Config NumberRoundConfiguration
}

func (x *NumberRound) Type() string {
	return "NumberRound"
}

func (x *NumberRound) New() types.Operation {
	return &NumberRound{}
}

func (x *NumberRound) Init(config types.Config, configuration types.Configuration) error {
	if _, ok := configuration["decimal_digits"]; !ok {
		return types.NewSchemaError("%s requires a decimal_digits parameter", x.Type())
	}
	if err := maps.Map2Struct(configuration, &x.Config); err != nil {
		return types.NewSchemaError("%s: %v", x.Type(), err)
	}
	if x.Config.DecimalDigits < 0 {
		return types.NewSchemaError("%s: decimal_digits must not be negative", x.Type())
	}
	return nil
}

func (x *NumberRound) InputKinds() []types.Kind {
	return types.NumberKinds
}

func (x *NumberRound) OutputKinds() []types.Kind {
	return types.NumberKinds
}

func (x *NumberRound) Transform(ctx *types.EvalContext, value interface{}) (interface{}, error) {
	f, err := cast.ToFloat64E(value)
	if err != nil {
		return nil, &types.OperationExecutionError{Operation: x.Type(), Detail: "expected number", Cause: err}
	}
	shift := math.Pow(10, float64(x.Config.DecimalDigits))
	rounded := math.RoundToEven(f*shift) / shift
	if x.Config.DecimalDigits == 0 {
		return int(rounded), nil
	}
	return rounded, nil
}

func (x *NumberRound) Destroy() {
}
