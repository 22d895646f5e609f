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
	Registry.Add(&SequenceAggregate{})
}

// Aggregation modes of SequenceAggregate.
const (
	AggregateModeFirst  = "first"
	AggregateModeLast   = "last"
	AggregateModeMode   = "mode"
	AggregateModeValues = "values"
)

// SequenceAggregateConfiguration selects the aggregation mode.
type SequenceAggregateConfiguration struct {
	Mode string `mapstructure:"mode"`
}

// SequenceAggregate reduces a possibly heterogeneous list. Elements are
// first narrowed to the majority kind (ties broken by first appearance),
// then the mode picks the first or last survivor, the most frequent value,
// or the deduplicated value list in encounter order.
type SequenceAggregate struct {
	Config SequenceAggregateConfiguration
}

func (x *SequenceAggregate) Type() string {
	return "SequenceAggregate"
}

func (x *SequenceAggregate) New() types.Operation {
	return &SequenceAggregate{}
}

func (x *SequenceAggregate) Init(config types.Config, configuration types.Configuration) error {
	if err := maps.Map2Struct(configuration, &x.Config); err != nil {
		return types.NewSchemaError("%s: %v", x.Type(), err)
	}
	switch x.Config.Mode {
	case AggregateModeFirst, AggregateModeLast, AggregateModeMode, AggregateModeValues:
		return nil
	case "":
		return types.NewSchemaError("%s requires a mode parameter", x.Type())
	default:
		return types.NewSchemaError("%s: unknown mode %q", x.Type(), x.Config.Mode)
	}
}

func (x *SequenceAggregate) InputKinds() []types.Kind {
	return []types.Kind{types.KindListOfValues}
}

func (x *SequenceAggregate) OutputKinds() []types.Kind {
	return types.WildcardKinds
}

func (x *SequenceAggregate) Transform(ctx *types.EvalContext, value interface{}) (interface{}, error) {
	list, ok := value.([]interface{})
	if !ok {
		return nil, types.NewOperationExecutionError(x.Type(), "expected list, got %T", value)
	}
	if len(list) == 0 {
		return nil, types.NewOperationExecutionError(x.Type(), "cannot aggregate an empty sequence")
	}
	majority := majorityKindElements(list)
	switch x.Config.Mode {
	case AggregateModeFirst:
		return majority[0], nil
	case AggregateModeLast:
		return majority[len(majority)-1], nil
	case AggregateModeMode:
		return mostFrequent(majority), nil
	default:
		return distinct(majority), nil
	}
}

func (x *SequenceAggregate) Destroy() {
}

// majorityKindElements keeps the elements of the most common kind,
// preserving their relative order. Ties go to the kind seen first.
func majorityKindElements(list []interface{}) []interface{} {
	groups := make(map[types.Kind][]interface{})
	var order []types.Kind
	for _, element := range list {
		kind := types.KindOf(element)
		if _, ok := groups[kind]; !ok {
			order = append(order, kind)
		}
		groups[kind] = append(groups[kind], element)
	}
	best := order[0]
	for _, kind := range order[1:] {
		if len(groups[kind]) > len(groups[best]) {
			best = kind
		}
	}
	return groups[best]
}

// mostFrequent returns the value occurring most often, first seen wins ties.
// Values are keyed by their string form so unhashable elements still count.
func mostFrequent(list []interface{}) interface{} {
	counts := make(map[string]int)
	firstSeen := make(map[string]interface{})
	var order []string
	for _, element := range list {
		key := cast.ToString(element)
		if _, ok := counts[key]; !ok {
			order = append(order, key)
			firstSeen[key] = element
		}
		counts[key]++
	}
	best := order[0]
	for _, key := range order[1:] {
		if counts[key] > counts[best] {
			best = key
		}
	}
	return firstSeen[best]
}

// distinct deduplicates in encounter order.
func distinct(list []interface{}) []interface{} {
	seen := make(map[string]bool)
	var out []interface{}
	for _, element := range list {
		key := cast.ToString(element)
		if !seen[key] {
			seen[key] = true
			out = append(out, element)
		}
	}
	return out
}
