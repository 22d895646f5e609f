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
	Registry.Add(&SequenceLength{})
}

// SequenceLength returns the length of a list, dictionary or detection
// collection.
type SequenceLength struct {
}

func (x *SequenceLength) Type() string {
	return "SequenceLength"
}

func (x *SequenceLength) New() types.Operation {
	return &SequenceLength{}
}

func (x *SequenceLength) Init(config types.Config, configuration types.Configuration) error {
	return nil
}

func (x *SequenceLength) InputKinds() []types.Kind {
	return types.SequenceKinds
}

func (x *SequenceLength) OutputKinds() []types.Kind {
	return []types.Kind{types.KindInteger}
}

func (x *SequenceLength) Transform(ctx *types.EvalContext, value interface{}) (interface{}, error) {
	length, ok := sequenceLen(value)
	if !ok {
		return nil, types.NewOperationExecutionError(x.Type(), "value of type %T has no length", value)
	}
	return length, nil
}

func (x *SequenceLength) Destroy() {
}

// sequenceLen returns the length of any sequence-kinded value.
func sequenceLen(value interface{}) (int, bool) {
	switch v := value.(type) {
	case []interface{}:
		return len(v), true
	case map[string]interface{}:
		return len(v), true
	case types.Detections:
		return v.Len(), true
	case *types.Detections:
		return v.Len(), true
	default:
		return 0, false
	}
}
