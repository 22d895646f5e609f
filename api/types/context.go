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
	"math/rand"
	"time"
)

// EvalContext carries the host-supplied name to value bindings for one
// evaluation call, plus the call's private randomness source. A context is
// not safe for concurrent use; validated chains and groups are, so hosts
// share the structure and hand each goroutine its own context.
type EvalContext struct {
	values map[string]interface{}
	rand   *rand.Rand
}

// NewEvalContext builds a context over the given bindings. The randomness
// source is seeded from the clock on first use.
func NewEvalContext(values map[string]interface{}) *EvalContext {
	return &EvalContext{values: values}
}

// NewSeededEvalContext builds a context with a fixed random seed, so
// evaluations involving RandomNumber are reproducible in tests.
func NewSeededEvalContext(values map[string]interface{}, seed int64) *EvalContext {
	return &EvalContext{values: values, rand: rand.New(rand.NewSource(seed))}
}

// Resolve looks up an operand name. The second result reports whether the
// name is bound at all; a bound nil is a present value.
func (c *EvalContext) Resolve(name string) (interface{}, bool) {
	if c == nil || c.values == nil {
		return nil, false
	}
	v, ok := c.values[name]
	return v, ok
}

// Bind derives a child context with one extra binding, leaving the parent
// untouched. The child shares the parent's randomness source.
func (c *EvalContext) Bind(name string, value interface{}) *EvalContext {
	values := make(map[string]interface{}, len(c.values)+1)
	for k, v := range c.values {
		values[k] = v
	}
	values[name] = value
	return &EvalContext{values: values, rand: c.rand}
}

// Rand returns the context's randomness source, creating a clock-seeded one
// on first use.
func (c *EvalContext) Rand() *rand.Rand {
	if c.rand == nil {
		c.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return c.rand
}
