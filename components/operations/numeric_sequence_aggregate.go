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
	Registry.Add(&NumericSequenceAggregate{})
}

// Aggregation functions of NumericSequenceAggregate.
const (
	AggregateMin = "min"
	AggregateMax = "max"
	AggregateSum = "sum"
	AggregateAvg = "avg"
)

// NumericSequenceAggregateConfiguration selects the aggregation function.
type NumericSequenceAggregateConfiguration struct {
	Function string `mapstructure:"function"`
}

// NumericSequenceAggregate folds a numeric list with min, max, sum or avg.
// Empty input and non-numeric elements fail the evaluation.
type NumericSequenceAggregate struct {
	Config NumericSequenceAggregateConfiguration
}

func (x *NumericSequenceAggregate) Type() string {
	return "NumericSequenceAggregate"
}

func (x *NumericSequenceAggregate) New() types.Operation {
	return &NumericSequenceAggregate{}
}

func (x *NumericSequenceAggregate) Init(config types.Config, configuration types.Configuration) error {
	if err := maps.Map2Struct(configuration, &x.Config); err != nil {
		return types.NewSchemaError("%s: %v", x.Type(), err)
	}
	switch x.Config.Function {
	case AggregateMin, AggregateMax, AggregateSum, AggregateAvg:
		return nil
	case "":
		return types.NewSchemaError("%s requires a function parameter", x.Type())
	default:
		return types.NewSchemaError("%s: unknown function %q", x.Type(), x.Config.Function)
	}
}

func (x *NumericSequenceAggregate) InputKinds() []types.Kind {
	return []types.Kind{types.KindListOfValues}
}

func (x *NumericSequenceAggregate) OutputKinds() []types.Kind {
	return types.NumberKinds
}

func (x *NumericSequenceAggregate) Transform(ctx *types.EvalContext, value interface{}) (interface{}, error) {
	list, ok := value.([]interface{})
	if !ok {
		return nil, types.NewOperationExecutionError(x.Type(), "expected list, got %T", value)
	}
	if len(list) == 0 {
		return nil, types.NewOperationExecutionError(x.Type(), "cannot aggregate an empty sequence")
	}
	numbers := make([]float64, len(list))
	for i, element := range list {
		f, err := cast.ToFloat64E(element)
		if err != nil {
			return nil, &types.OperationExecutionError{
				Operation: x.Type(),
				Detail:    "non-numeric element",
				Cause:     err,
			}
		}
		numbers[i] = f
	}
	result := numbers[0]
	switch x.Config.Function {
	case AggregateMin:
		for _, f := range numbers[1:] {
			if f < result {
				result = f
			}
		}
	case AggregateMax:
		for _, f := range numbers[1:] {
			if f > result {
				result = f
			}
		}
	case AggregateSum, AggregateAvg:
		for _, f := range numbers[1:] {
			result += f
		}
		if x.Config.Function == AggregateAvg {
			result /= float64(len(numbers))
		}
	}
	return result, nil
}

func (x *NumericSequenceAggregate) Destroy() {
}
