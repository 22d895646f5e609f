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

// Package comparators hosts the closed comparator catalog: the binary and
// unary predicates statements combine over resolved operands. Components
// register themselves during init and are picked up by the engine registry.
package comparators

import (
	"github.com/visionql/visionql/api/types"
)

// Registry collects the comparator components of this package.
var Registry = new(types.SafeComparatorSlice)

// checkOperand guards one Compare argument against the declared operand
// kinds. Validation normally catches mismatches earlier, so this only fires
// when validation was skipped or a Wildcard-kinded operand narrowed badly.
func checkOperand(comparatorType string, value interface{}, accepted []types.Kind) error {
	kind := types.KindOf(value)
	if types.Compatible([]types.Kind{kind}, accepted) {
		return nil
	}
	return types.NewKindMismatchError(-1, []types.Kind{kind}, accepted,
		"operand of "+comparatorType+" has an incompatible kind")
}
