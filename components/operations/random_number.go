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
	"github.com/visionql/visionql/utils/maps"
)

func init() {
	Registry.Add(&RandomNumber{})
}

// RandomNumberConfiguration bounds the generated value. The defaults keep
// the output within the unit interval.
type RandomNumberConfiguration struct {
	MinValue *float64 `mapstructure:"min_value"`
	MaxValue *float64 `mapstructure:"max_value"`
}

// RandomNumber discards its input and yields a uniform float from
// [min_value, max_value). Randomness comes from the evaluation context so
// seeded contexts reproduce their draws.
type RandomNumber struct {
	min float64
	max float64
}

func (x *RandomNumber) Type() string {
	return "RandomNumber"
}

func (x *RandomNumber) New() types.Operation {
	return &RandomNumber{}
}

func (x *RandomNumber) Init(config types.Config, configuration types.Configuration) error {
	var cfg RandomNumberConfiguration
	if err := maps.Map2Struct(configuration, &cfg); err != nil {
		return types.NewSchemaError("%s: %v", x.Type(), err)
	}
	x.min, x.max = 0.0, 1.0
	if cfg.MinValue != nil {
		x.min = *cfg.MinValue
	}
	if cfg.MaxValue != nil {
		x.max = *cfg.MaxValue
	}
	if x.min > x.max {
		return &types.InvalidRangeError{Min: x.min, Max: x.max}
	}
	return nil
}

func (x *RandomNumber) InputKinds() []types.Kind {
	return types.WildcardKinds
}

func (x *RandomNumber) OutputKinds() []types.Kind {
	return []types.Kind{types.KindFloat, types.KindFloatZeroToOne}
}

func (x *RandomNumber) Transform(ctx *types.EvalContext, value interface{}) (interface{}, error) {
	return ctx.Rand().Float64()*(x.max-x.min) + x.min, nil
}

func (x *RandomNumber) Destroy() {
}
