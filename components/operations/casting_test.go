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
	"strings"
	"testing"

	"github.com/visionql/visionql/api/types"
	"github.com/visionql/visionql/test"
	"github.com/visionql/visionql/test/assert"
)

func TestToString(t *testing.T) {
	op, err := test.CreateAndInitOperation("ToString", nil, Registry)
	assert.Nil(t, err)
	ctx := types.NewEvalContext(nil)

	result, err := op.Transform(ctx, 42)
	assert.Nil(t, err)
	assert.Equal(t, "42", result)

	result, err = op.Transform(ctx, true)
	assert.Nil(t, err)
	assert.Equal(t, "true", result)

	// Structured values serialize to JSON.
	result, err = op.Transform(ctx, types.Detection{ClassName: "cat"})
	assert.Nil(t, err)
	assert.True(t, strings.Contains(result.(string), `"class_name":"cat"`))
}

func TestToBoolean(t *testing.T) {
	op, err := test.CreateAndInitOperation("ToBoolean", nil, Registry)
	assert.Nil(t, err)
	ctx := types.NewEvalContext(nil)

	result, err := op.Transform(ctx, 0)
	assert.Nil(t, err)
	assert.Equal(t, false, result)

	result, err = op.Transform(ctx, 0.25)
	assert.Nil(t, err)
	assert.Equal(t, true, result)

	result, err = op.Transform(ctx, -3)
	assert.Nil(t, err)
	assert.Equal(t, true, result)
}
