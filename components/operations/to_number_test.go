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

func TestToNumberInt(t *testing.T) {
	op, err := test.CreateAndInitOperation("ToNumber", types.Configuration{"cast_to": "int"}, Registry)
	assert.Nil(t, err)
	ctx := types.NewEvalContext(nil)

	result, err := op.Transform(ctx, "21")
	assert.Nil(t, err)
	assert.Equal(t, 21, result)

	result, err = op.Transform(ctx, true)
	assert.Nil(t, err)
	assert.Equal(t, 1, result)

	_, err = op.Transform(ctx, "not a number")
	var execution *types.OperationExecutionError
	assert.True(t, errors.As(err, &execution))
}

func TestToNumberFloat(t *testing.T) {
	op, err := test.CreateAndInitOperation("ToNumber", types.Configuration{"cast_to": "float"}, Registry)
	assert.Nil(t, err)
	ctx := types.NewEvalContext(nil)

	result, err := op.Transform(ctx, "3.5")
	assert.Nil(t, err)
	assert.Equal(t, 3.5, result)
}

func TestToNumberConfig(t *testing.T) {
	_, err := test.CreateAndInitOperation("ToNumber", nil, Registry)
	assert.NotNil(t, err)

	_, err = test.CreateAndInitOperation("ToNumber", types.Configuration{"cast_to": "complex"}, Registry)
	assert.NotNil(t, err)
}
