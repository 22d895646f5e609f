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

package types

import (
	"testing"

	"github.com/visionql/visionql/test/assert"
)

func TestEvalContextResolve(t *testing.T) {
	ctx := NewEvalContext(map[string]interface{}{"_": "value", "nothing": nil})

	v, ok := ctx.Resolve("_")
	assert.True(t, ok)
	assert.Equal(t, "value", v)

	// A bound nil is a present value.
	v, ok = ctx.Resolve("nothing")
	assert.True(t, ok)
	assert.Nil(t, v)

	_, ok = ctx.Resolve("missing")
	assert.False(t, ok)
}

func TestEvalContextBindLeavesParentUntouched(t *testing.T) {
	parent := NewEvalContext(map[string]interface{}{"_": "original"})
	child := parent.Bind("_", "override")

	v, _ := child.Resolve("_")
	assert.Equal(t, "override", v)
	v, _ = parent.Resolve("_")
	assert.Equal(t, "original", v)
}

func TestSeededEvalContextIsReproducible(t *testing.T) {
	first := NewSeededEvalContext(nil, 7)
	second := NewSeededEvalContext(nil, 7)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first.Rand().Float64(), second.Rand().Float64())
	}
}

func TestBindSharesRandomness(t *testing.T) {
	parent := NewSeededEvalContext(nil, 7)
	reference := NewSeededEvalContext(nil, 7)
	child := parent.Bind("x", 1)

	// The child draws from the same stream as the parent.
	assert.Equal(t, reference.Rand().Float64(), child.Rand().Float64())
	assert.Equal(t, reference.Rand().Float64(), parent.Rand().Float64())
}
