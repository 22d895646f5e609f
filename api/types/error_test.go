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
	"errors"
	"testing"

	"github.com/visionql/visionql/test/assert"
)

func TestKindMismatchErrorMessage(t *testing.T) {
	err := NewKindMismatchError(2, []Kind{KindBoolean}, []Kind{KindString}, "boom")
	assert.True(t, len(err.Error()) > 0)
	assert.Equal(t, 2, err.Stage)

	detached := NewKindMismatchError(-1, []Kind{KindBoolean}, []Kind{KindString}, "boom")
	assert.NotEqual(t, err.Error(), detached.Error())
}

func TestOperationExecutionErrorUnwrap(t *testing.T) {
	cause := errors.New("bad input")
	err := &OperationExecutionError{Operation: "ToNumber", Detail: "cast failed", Cause: cause}
	assert.True(t, errors.Is(err, cause))

	var target *OperationExecutionError
	assert.True(t, errors.As(err, &target))
	assert.Equal(t, "ToNumber", target.Operation)
}

func TestErrorClassesAreDistinct(t *testing.T) {
	var schema *SchemaError
	err := error(NewSchemaError("bad document"))
	assert.True(t, errors.As(err, &schema))

	var mismatch *KindMismatchError
	assert.False(t, errors.As(err, &mismatch))
}
