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
	"errors"
	"testing"

	"github.com/visionql/visionql/api/types"
	"github.com/visionql/visionql/test"
	"github.com/visionql/visionql/test/assert"
)

func TestRandomNumberDefaults(t *testing.T) {
	op, err := test.CreateAndInitOperation("RandomNumber", nil, Registry)
	assert.Nil(t, err)
	ctx := types.NewEvalContext(nil)

	for i := 0; i < 20; i++ {
		result, err := op.Transform(ctx, nil)
		assert.Nil(t, err)
		f := result.(float64)
		assert.True(t, f >= 0.0 && f < 1.0)
	}
}

func TestRandomNumberRange(t *testing.T) {
	op, err := test.CreateAndInitOperation("RandomNumber",
		types.Configuration{"min_value": 5.0, "max_value": 6.0}, Registry)
	assert.Nil(t, err)

	result, err := op.Transform(types.NewEvalContext(nil), nil)
	assert.Nil(t, err)
	f := result.(float64)
	assert.True(t, f >= 5.0 && f < 6.0)
}

func TestRandomNumberInvalidRange(t *testing.T) {
	_, err := test.CreateAndInitOperation("RandomNumber",
		types.Configuration{"min_value": 2.0, "max_value": 1.0}, Registry)
	var invalid *types.InvalidRangeError
	assert.True(t, errors.As(err, &invalid))
	assert.Equal(t, 2.0, invalid.Min)
	assert.Equal(t, 1.0, invalid.Max)
}

func TestRandomNumberSeededReproducibility(t *testing.T) {
	op, err := test.CreateAndInitOperation("RandomNumber", nil, Registry)
	assert.Nil(t, err)

	first, err := op.Transform(types.NewSeededEvalContext(nil, 11), nil)
	assert.Nil(t, err)
	second, err := op.Transform(types.NewSeededEvalContext(nil, 11), nil)
	assert.Nil(t, err)
	assert.Equal(t, first, second)
}
