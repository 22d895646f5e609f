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
	Registry.Add(&LookupTable{}, &SequenceMap{})
}

// LookupTableConfiguration holds the user-supplied mapping. Table keys are
// matched against the stringified input value, so documents can map
// numbers and booleans as well as strings.
type LookupTableConfiguration struct {
	LookupTable map[string]interface{} `mapstructure:"lookup_table"`
}

// LookupTable maps a value through the configured table. A miss passes the
// value through unchanged.
type LookupTable struct {
	Config LookupTableConfiguration
}

func (x *LookupTable) Type() string {
	return "LookupTable"
}

func (x *LookupTable) New() types.Operation {
	return &LookupTable{}
}

func (x *LookupTable) Init(config types.Config, configuration types.Configuration) error {
	if _, ok := configuration["lookup_table"]; !ok {
		return types.NewSchemaError("%s requires a lookup_table parameter", x.Type())
	}
	if err := maps.Map2Struct(configuration, &x.Config); err != nil {
		return types.NewSchemaError("%s: malformed lookup_table: %v", x.Type(), err)
	}
	return nil
}

func (x *LookupTable) InputKinds() []types.Kind {
	return types.WildcardKinds
}

func (x *LookupTable) OutputKinds() []types.Kind {
	return types.WildcardKinds
}

func (x *LookupTable) Transform(ctx *types.EvalContext, value interface{}) (interface{}, error) {
	return lookup(x.Config.LookupTable, value), nil
}

func (x *LookupTable) Destroy() {
}

// SequenceMap maps every element of a list through the configured table,
// preserving order and length. Misses pass elements through unchanged.
type SequenceMap struct {
	Config LookupTableConfiguration
}

func (x *SequenceMap) Type() string {
	return "SequenceMap"
}

func (x *SequenceMap) New() types.Operation {
	return &SequenceMap{}
}

func (x *SequenceMap) Init(config types.Config, configuration types.Configuration) error {
	if _, ok := configuration["lookup_table"]; !ok {
		return types.NewSchemaError("%s requires a lookup_table parameter", x.Type())
	}
	if err := maps.Map2Struct(configuration, &x.Config); err != nil {
		return types.NewSchemaError("%s: malformed lookup_table: %v", x.Type(), err)
	}
	return nil
}

func (x *SequenceMap) InputKinds() []types.Kind {
	return []types.Kind{types.KindListOfValues}
}

func (x *SequenceMap) OutputKinds() []types.Kind {
	return []types.Kind{types.KindListOfValues}
}

func (x *SequenceMap) Transform(ctx *types.EvalContext, value interface{}) (interface{}, error) {
	list, ok := value.([]interface{})
	if !ok {
		return nil, types.NewOperationExecutionError(x.Type(), "expected list, got %T", value)
	}
	mapped := make([]interface{}, len(list))
	for i, element := range list {
		mapped[i] = lookup(x.Config.LookupTable, element)
	}
	return mapped, nil
}

func (x *SequenceMap) Destroy() {
}

func lookup(table map[string]interface{}, value interface{}) interface{} {
	if mapped, ok := table[cast.ToString(value)]; ok {
		return mapped
	}
	return value
}
