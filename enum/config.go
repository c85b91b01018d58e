// Copyright ©2024 The Polytope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enum

import (
	"context"

	"github.com/rs/zerolog"
)

// Config carries the driver-facing knobs of the core. The core
// never reads a config file itself; the driver decodes one (e.g. from YAML,
// hence the struct tags) and passes the populated Config straight in.
type Config struct {
	MaxDepth     int  `yaml:"maxDepth"`     // 0 = unlimited
	IntegerInput bool `yaml:"integerInput"` // metadata only, affects stats labelling
	PrintCobasis bool `yaml:"printCobasis"` // if set, EnumStats.LastCobasis is populated in either direction

	log zerolog.Logger
	ctx context.Context
}

// Option is a functional option for Config, following the same shape as
// gonum.org/v1/gonum/mat's FormatOption.
type Option func(*Config)

// NewConfig builds a Config with every option applied over silent,
// uncancellable, unlimited-depth defaults.
func NewConfig(opts ...Option) Config {
	c := Config{
		log: zerolog.Nop(),
		ctx: context.Background(),
	}
	for _, o := range opts {
		o(&c)
	}
	return c
}

// WithMaxDepth caps DFS depth in the H→V reverse search. 0 means unlimited.
func WithMaxDepth(n int) Option {
	return func(c *Config) { c.MaxDepth = n }
}

// WithIntegerInputHint records that the caller's input was already integral;
// it affects only stats labelling, never traversal behaviour.
func WithIntegerInputHint(v bool) Option {
	return func(c *Config) { c.IntegerInput = v }
}

// WithCobasisTracking enables population of EnumStats.LastCobasis: the
// cobasis of the last basis visited in ReverseSearch, or the cobasis of the
// last facet in FacetEnumerate's output order.
func WithCobasisTracking(v bool) Option {
	return func(c *Config) { c.PrintCobasis = v }
}

// WithLogger attaches a structured logger for diagnostics (no feasible root,
// skipped singular bases, depth-cap truncation, discovered facets). No log statement
// ever participates in a correctness decision.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Config) { c.log = log }
}

// WithCancellation threads ctx into the DFS loop; it is polled between pops
// from the stack.
func WithCancellation(ctx context.Context) Option {
	return func(c *Config) { c.ctx = ctx }
}

func (c Config) logger() zerolog.Logger {
	return c.log
}

func (c Config) context() context.Context {
	if c.ctx == nil {
		return context.Background()
	}
	return c.ctx
}

func (c Config) depthAllowed(depth int) bool {
	return c.MaxDepth <= 0 || depth <= c.MaxDepth
}
