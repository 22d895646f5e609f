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
	"testing"

	"github.com/visionql/visionql/api/types"
	"github.com/visionql/visionql/test"
	"github.com/visionql/visionql/test/assert"
)

func TestLookupTable(t *testing.T) {
	op, err := test.CreateAndInitOperation("LookupTable", types.Configuration{
		"lookup_table": map[string]interface{}{"cat": "feline", "1": "one"},
	}, Registry)
	assert.Nil(t, err)
	ctx := types.NewEvalContext(nil)

	result, err := op.Transform(ctx, "cat")
	assert.Nil(t, err)
	assert.Equal(t, "feline", result)

	// Numeric inputs match their stringified key.
	result, err = op.Transform(ctx, 1)
	assert.Nil(t, err)
	assert.Equal(t, "one", result)

	// A miss passes the value through unchanged.
	result, err = op.Transform(ctx, "dog")
	assert.Nil(t, err)
	assert.Equal(t, "dog", result)
}

func TestLookupTableRequiresTable(t *testing.T) {
	_, err := test.CreateAndInitOperation("LookupTable", nil, Registry)
	assert.NotNil(t, err)
}

func TestSequenceMap(t *testing.T) {
	op, err := test.CreateAndInitOperation("SequenceMap", types.Configuration{
		"lookup_table": map[string]interface{}{"a": 1, "b": 2},
	}, Registry)
	assert.Nil(t, err)
	ctx := types.NewEvalContext(nil)

	result, err := op.Transform(ctx, []interface{}{"a", "b", "c"})
	assert.Nil(t, err)
	assert.Equal(t, []interface{}{1, 2, "c"}, result)

	_, err = op.Transform(ctx, "not a list")
	assert.NotNil(t, err)
}
