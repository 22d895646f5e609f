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

// Config defines the engine configuration shared by every build and
// validate call.
type Config struct {
	// Logger is the logging interface, defaulting to DefaultLogger().
	Logger Logger
	// Operations is the operation component registry. When nil, the engine
	// falls back to its default registry.
	Operations OperationRegistry
	// Comparators is the comparator component registry. When nil, the
	// engine falls back to its default registry.
	Comparators ComparatorRegistry
	// RandomSeed, when set, seeds the randomness source of every evaluation
	// context the facade creates, making RandomNumber draws reproducible.
	RandomSeed *int64
}

// NewEvalContext builds an evaluation context over the given bindings,
// honoring the configured random seed.
func (c Config) NewEvalContext(values map[string]interface{}) *EvalContext {
	if c.RandomSeed != nil {
		return NewSeededEvalContext(values, *c.RandomSeed)
	}
	return NewEvalContext(values)
}

// NewConfig creates a Config with default values and applies the provided
// options.
func NewConfig(opts ...Option) Config {
	c := &Config{
		Logger: DefaultLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return *c
}

// Option mutates a Config under construction.
type Option func(*Config)

// WithLogger sets the logging implementation.
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithOperationRegistry overrides the operation component registry.
func WithOperationRegistry(registry OperationRegistry) Option {
	return func(c *Config) {
		c.Operations = registry
	}
}

// WithComparatorRegistry overrides the comparator component registry.
func WithComparatorRegistry(registry ComparatorRegistry) Option {
	return func(c *Config) {
		c.Comparators = registry
	}
}

// WithRandomSeed fixes the random seed of facade-created evaluation
// contexts.
func WithRandomSeed(seed int64) Option {
	return func(c *Config) {
		c.RandomSeed = &seed
	}
}
