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

package comparators

import (
	"github.com/visionql/visionql/api/types"
)

func init() {
	Registry.Add(
		&SequenceEmptiness{tag: "(Sequence) is empty", expectEmpty: true},
		&SequenceEmptiness{tag: "(Sequence) is not empty", expectEmpty: false},
	)
}

// SequenceEmptiness covers the two emptiness comparators over lists,
// dictionaries and detection collections.
type SequenceEmptiness struct {
	tag         string
	expectEmpty bool
}

func (x *SequenceEmptiness) Type() string {
	return x.tag
}

func (x *SequenceEmptiness) New() types.Comparator {
	return &SequenceEmptiness{tag: x.tag, expectEmpty: x.expectEmpty}
}

func (x *SequenceEmptiness) Init(config types.Config, configuration types.Configuration) error {
	return nil
}

func (x *SequenceEmptiness) OperandsNumber() int {
	return 1
}

func (x *SequenceEmptiness) OperandKinds() [][]types.Kind {
	return [][]types.Kind{types.SequenceKinds}
}

func (x *SequenceEmptiness) Compare(left, right interface{}) (bool, error) {
	var length int
	switch v := left.(type) {
	case []interface{}:
		length = len(v)
	case map[string]interface{}:
		length = len(v)
	case types.Detections:
		length = v.Len()
	case *types.Detections:
		length = v.Len()
	default:
		return false, types.NewKindMismatchError(-1, []types.Kind{types.KindOf(left)}, types.SequenceKinds,
			"operand of "+x.tag+" has no length")
	}
	return (length == 0) == x.expectEmpty, nil
}
