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
	"github.com/visionql/visionql/utils/cast"
)

func init() {
	Registry.Add(
		&NumberOrdering{tag: "(Number) >", holds: func(l, r float64) bool { return l > r }},
		&NumberOrdering{tag: "(Number) >=", holds: func(l, r float64) bool { return l >= r }},
		&NumberOrdering{tag: "(Number) <", holds: func(l, r float64) bool { return l < r }},
		&NumberOrdering{tag: "(Number) <=", holds: func(l, r float64) bool { return l <= r }},
	)
}

// NumberOrdering covers the four numeric ordering comparators. One struct
// per relation keeps the catalog closed while sharing the operand plumbing.
type NumberOrdering struct {
	tag   string
	holds func(left, right float64) bool
}

func (x *NumberOrdering) Type() string {
	return x.tag
}

func (x *NumberOrdering) New() types.Comparator {
	return &NumberOrdering{tag: x.tag, holds: x.holds}
}

func (x *NumberOrdering) Init(config types.Config, configuration types.Configuration) error {
	return nil
}

func (x *NumberOrdering) OperandsNumber() int {
	return 2
}

func (x *NumberOrdering) OperandKinds() [][]types.Kind {
	return [][]types.Kind{types.NumberKinds, types.NumberKinds}
}

func (x *NumberOrdering) Compare(left, right interface{}) (bool, error) {
	if err := checkOperand(x.tag, left, types.NumberKinds); err != nil {
		return false, err
	}
	if err := checkOperand(x.tag, right, types.NumberKinds); err != nil {
		return false, err
	}
	l, _ := cast.ToFloat64E(left)
	r, _ := cast.ToFloat64E(right)
	return x.holds(l, r), nil
}
