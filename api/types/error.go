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

import "fmt"

// SchemaError reports a malformed document: an unknown discriminator tag, a
// missing required field or a malformed literal. It is raised at decode or
// build time and rejects the document wholesale.
type SchemaError struct {
	Detail string
}

func (e *SchemaError) Error() string {
	return "schema error: " + e.Detail
}

// NewSchemaError builds a SchemaError from a format string.
func NewSchemaError(format string, args ...interface{}) *SchemaError {
	return &SchemaError{Detail: fmt.Sprintf(format, args...)}
}

// KindMismatchError reports that adjacent chain stages, or a comparator and
// one of its operands, are kind-incompatible. Stage is the index of the
// offending stage; it is -1 when the mismatch is not tied to a chain stage.
type KindMismatchError struct {
	Stage    int
	Produced []Kind
	Accepted []Kind
	Detail   string
}

func (e *KindMismatchError) Error() string {
	if e.Stage >= 0 {
		return fmt.Sprintf("kind mismatch at stage %d: %s (produced %v, accepted %v)",
			e.Stage, e.Detail, e.Produced, e.Accepted)
	}
	return fmt.Sprintf("kind mismatch: %s (produced %v, accepted %v)",
		e.Detail, e.Produced, e.Accepted)
}

// NewKindMismatchError builds a KindMismatchError for a chain stage.
func NewKindMismatchError(stage int, produced, accepted []Kind, detail string) *KindMismatchError {
	return &KindMismatchError{Stage: stage, Produced: produced, Accepted: accepted, Detail: detail}
}

// OperandResolutionError reports that a dynamic operand's name is absent
// from the runtime context. It aborts the current evaluation only.
type OperandResolutionError struct {
	Name string
}

func (e *OperandResolutionError) Error() string {
	return fmt.Sprintf("operand %q not found in evaluation context", e.Name)
}

// OperationExecutionError reports a runtime fault inside a specific
// operation: an unparsable cast, an invalid regex, an aggregation over
// empty or non-numeric input. It aborts the current chain evaluation.
type OperationExecutionError struct {
	Operation string
	Detail    string
	Cause     error
}

func (e *OperationExecutionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("operation %s failed: %s: %v", e.Operation, e.Detail, e.Cause)
	}
	return fmt.Sprintf("operation %s failed: %s", e.Operation, e.Detail)
}

func (e *OperationExecutionError) Unwrap() error {
	return e.Cause
}

// NewOperationExecutionError builds an OperationExecutionError without a cause.
func NewOperationExecutionError(operation, format string, args ...interface{}) *OperationExecutionError {
	return &OperationExecutionError{Operation: operation, Detail: fmt.Sprintf(format, args...)}
}

// InvalidRangeError reports a RandomNumber operation configured with
// min_value greater than max_value. The range is static configuration, so
// the error is raised when the operation initializes.
type InvalidRangeError struct {
	Min float64
	Max float64
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range: min_value %v > max_value %v", e.Min, e.Max)
}
