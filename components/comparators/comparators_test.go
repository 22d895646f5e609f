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
	"errors"
	"testing"

	"github.com/visionql/visionql/api/types"
	"github.com/visionql/visionql/test"
	"github.com/visionql/visionql/test/assert"
)

func compare(t *testing.T, comparatorType string, left, right interface{}) bool {
	t.Helper()
	comparator, err := test.CreateAndInitComparator(comparatorType, nil, Registry)
	assert.Nil(t, err)
	result, err := comparator.Compare(left, right)
	assert.Nil(t, err)
	return result
}

func TestRegistryCoversTheCatalog(t *testing.T) {
	assert.Equal(t, 16, len(Registry.Components()))
	binary, unary := 0, 0
	for _, comparator := range Registry.Components() {
		switch comparator.OperandsNumber() {
		case 2:
			binary++
		case 1:
			unary++
		}
	}
	assert.Equal(t, 10, binary)
	assert.Equal(t, 6, unary)
}

func TestEquality(t *testing.T) {
	assert.True(t, compare(t, "==", "cat", "cat"))
	assert.False(t, compare(t, "==", "cat", "dog"))
	assert.True(t, compare(t, "!=", "cat", "dog"))

	// Numbers compare by value across representations.
	assert.True(t, compare(t, "==", 1, 1.0))
	assert.False(t, compare(t, "!=", 1, 1.0))

	// Structured values compare structurally.
	assert.True(t, compare(t, "==", []interface{}{1, 2}, []interface{}{1, 2}))
	assert.False(t, compare(t, "==", []interface{}{1, 2}, []interface{}{2, 1}))
}

func TestNumberOrdering(t *testing.T) {
	assert.True(t, compare(t, "(Number) >", 2, 1))
	assert.False(t, compare(t, "(Number) >", 1, 1))
	assert.True(t, compare(t, "(Number) >=", 1, 1))
	assert.True(t, compare(t, "(Number) <", 0.5, 1))
	assert.True(t, compare(t, "(Number) <=", 1.0, 1))
	assert.False(t, compare(t, "(Number) <=", 1.5, 1))
}

func TestNumberOrderingRejectsNonNumbers(t *testing.T) {
	comparator, err := test.CreateAndInitComparator("(Number) >", nil, Registry)
	assert.Nil(t, err)
	_, err = comparator.Compare("two", 1)
	var mismatch *types.KindMismatchError
	assert.True(t, errors.As(err, &mismatch))
}

func TestStringRelations(t *testing.T) {
	assert.True(t, compare(t, "(String) startsWith", "caterpillar", "cat"))
	assert.False(t, compare(t, "(String) startsWith", "dog", "cat"))
	assert.True(t, compare(t, "(String) endsWith", "caterpillar", "pillar"))
	assert.True(t, compare(t, "(String) contains", "caterpillar", "terp"))
	assert.False(t, compare(t, "(String) contains", "cat", "dog"))
}

func TestStringRelationsRejectNonStrings(t *testing.T) {
	comparator, err := test.CreateAndInitComparator("(String) contains", nil, Registry)
	assert.Nil(t, err)
	_, err = comparator.Compare(42, "cat")
	var mismatch *types.KindMismatchError
	assert.True(t, errors.As(err, &mismatch))
}

func TestIn(t *testing.T) {
	assert.True(t, compare(t, "in", "cat", []interface{}{"dog", "cat"}))
	assert.False(t, compare(t, "in", "fox", []interface{}{"dog", "cat"}))
	assert.True(t, compare(t, "in", 2, []interface{}{1.0, 2.0}))

	// Against a dictionary, "in" tests key membership.
	assert.True(t, compare(t, "in", "cat", map[string]interface{}{"cat": 1}))
	assert.False(t, compare(t, "in", "dog", map[string]interface{}{"cat": 1}))
}

func TestInRejectsNonContainer(t *testing.T) {
	comparator, err := test.CreateAndInitComparator("in", nil, Registry)
	assert.Nil(t, err)
	_, err = comparator.Compare("cat", "cats")
	var mismatch *types.KindMismatchError
	assert.True(t, errors.As(err, &mismatch))
}

func TestExistence(t *testing.T) {
	// A resolved operand exists regardless of its value.
	assert.True(t, compare(t, "Exists", "value", nil))
	assert.True(t, compare(t, "Exists", nil, nil))
	assert.False(t, compare(t, "DoesNotExist", "value", nil))
}

func TestBooleanTruth(t *testing.T) {
	assert.True(t, compare(t, "(Boolean) is True", true, nil))
	assert.False(t, compare(t, "(Boolean) is True", false, nil))
	assert.True(t, compare(t, "(Boolean) is False", false, nil))

	comparator, err := test.CreateAndInitComparator("(Boolean) is True", nil, Registry)
	assert.Nil(t, err)
	_, err = comparator.Compare(1, nil)
	var mismatch *types.KindMismatchError
	assert.True(t, errors.As(err, &mismatch))
}

func TestSequenceEmptiness(t *testing.T) {
	assert.True(t, compare(t, "(Sequence) is empty", []interface{}{}, nil))
	assert.False(t, compare(t, "(Sequence) is empty", []interface{}{1}, nil))
	assert.True(t, compare(t, "(Sequence) is not empty", map[string]interface{}{"a": 1}, nil))
	assert.True(t, compare(t, "(Sequence) is empty", test.Detections(), nil))
	assert.False(t, compare(t, "(Sequence) is empty", test.Detections(types.Detection{}), nil))

	comparator, err := test.CreateAndInitComparator("(Sequence) is empty", nil, Registry)
	assert.Nil(t, err)
	_, err = comparator.Compare(42, nil)
	var mismatch *types.KindMismatchError
	assert.True(t, errors.As(err, &mismatch))
}
