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

package cast

import (
	"testing"

	"github.com/visionql/visionql/test/assert"
)

func TestToFloat64E(t *testing.T) {
	f, err := ToFloat64E(42)
	assert.Nil(t, err)
	assert.Equal(t, 42.0, f)

	f, err = ToFloat64E("3.5")
	assert.Nil(t, err)
	assert.Equal(t, 3.5, f)

	f, err = ToFloat64E(true)
	assert.Nil(t, err)
	assert.Equal(t, 1.0, f)

	_, err = ToFloat64E("not a number")
	assert.NotNil(t, err)

	_, err = ToFloat64E([]interface{}{1})
	assert.NotNil(t, err)
}

func TestToIntE(t *testing.T) {
	i, err := ToIntE(7)
	assert.Nil(t, err)
	assert.Equal(t, 7, i)

	i, err = ToIntE(3.0)
	assert.Nil(t, err)
	assert.Equal(t, 3, i)

	i, err = ToIntE("21")
	assert.Nil(t, err)
	assert.Equal(t, 21, i)

	i, err = ToIntE(false)
	assert.Nil(t, err)
	assert.Equal(t, 0, i)

	// Fractional floats are rejected, not truncated.
	_, err = ToIntE(3.14)
	assert.NotNil(t, err)
	_, err = ToIntE("3.14")
	assert.NotNil(t, err)
}

func TestToBoolE(t *testing.T) {
	b, err := ToBoolE(true)
	assert.Nil(t, err)
	assert.True(t, b)

	b, err = ToBoolE(0)
	assert.Nil(t, err)
	assert.False(t, b)

	b, err = ToBoolE(0.25)
	assert.Nil(t, err)
	assert.True(t, b)

	b, err = ToBoolE("true")
	assert.Nil(t, err)
	assert.True(t, b)

	_, err = ToBoolE("maybe")
	assert.NotNil(t, err)
}

func TestToStringE(t *testing.T) {
	s, err := ToStringE("hello")
	assert.Nil(t, err)
	assert.Equal(t, "hello", s)

	s, err = ToStringE(42)
	assert.Nil(t, err)
	assert.Equal(t, "42", s)

	s, err = ToStringE(2.5)
	assert.Nil(t, err)
	assert.Equal(t, "2.5", s)

	s, err = ToStringE(nil)
	assert.Nil(t, err)
	assert.Equal(t, "", s)

	// Non-scalars serialize to JSON.
	s, err = ToStringE(map[string]interface{}{"a": 1})
	assert.Nil(t, err)
	assert.Equal(t, `{"a":1}`, s)
}
