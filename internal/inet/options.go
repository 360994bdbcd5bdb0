package inet

import (
	"strings"

	"github.com/pkg/errors"
)

// Option configures a Net under New.
type Option interface{ apply(net *Net) }

// Options combines any number of options into one.
func Options(opts ...Option) Option {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, impl)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	return res
}

type options []Option

func (opts options) apply(net *Net) {
	for _, opt := range opts {
		opt.apply(net)
	}
}

var defaultOptions = Options(
	WithProfile(DefaultProfile),
	WithStrategy(LIFO),
	WithStrict(true),
)

// WithProfile selects the storage profile.
func WithProfile(prof Profile) Option { return profileOption(prof) }

// WithMemLimit bounds the arena to the given number of nodes; allocating
// past it fails reduction with ErrOutOfMemory. Zero leaves only the bound
// implied by the profile.
func WithMemLimit(nodes uint) Option { return memLimitOption(nodes) }

// WithPageSize sets the arena growth granularity, in nodes.
func WithPageSize(nodes uint) Option { return pageSizeOption(nodes) }

// WithStrategy selects the worklist processing order.
func WithStrategy(strategy Strategy) Option { return strategy }

// WithStrict selects the fault policy: strict nets halt reduction on the
// first fault, lenient ones log it, substitute zero and continue.
func WithStrict(strict bool) Option { return strictOption(strict) }

// WithLogf installs a trace logging function.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return logfnOption(logfn) }

// WithMetrics reports reduction activity into the given metrics.
func WithMetrics(metrics *Metrics) Option { return metricsOption{metrics} }

type profileOption Profile
type memLimitOption uint
type pageSizeOption uint
type strictOption bool
type logfnOption func(mess string, args ...interface{})
type metricsOption struct{ *Metrics }

func (prof profileOption) apply(net *Net)  { net.prof = Profile(prof) }
func (lim memLimitOption) apply(net *Net)  { net.memLimit = uint(lim) }
func (size pageSizeOption) apply(net *Net) { net.pageSize = uint(size) }
func (strict strictOption) apply(net *Net) { net.strict = bool(strict) }
func (logfn logfnOption) apply(net *Net)   { net.logfn = logfn }
func (opt metricsOption) apply(net *Net)   { net.metrics = opt.Metrics }
func (strategy Strategy) apply(net *Net)   { net.strategy = strategy }

// Strategy is a worklist processing order. Rewriting is confluent, so every
// strategy reaches the same normal form, though rewrite and pass counts may
// differ.
type Strategy uint8

// Worklist strategies.
const (
	// LIFO rewrites the most recently discovered active pair first.
	LIFO Strategy = iota

	// FIFO rewrites active pairs in discovery order.
	FIFO
)

// StrategyNamed parses a strategy name, case insensitively.
func StrategyNamed(name string) (Strategy, error) {
	switch strings.ToUpper(name) {
	case "LIFO":
		return LIFO, nil
	case "FIFO":
		return FIFO, nil
	}
	return 0, errors.Errorf("unknown strategy %q, expected LIFO or FIFO", name)
}

func (strategy Strategy) String() string {
	switch strategy {
	case LIFO:
		return "LIFO"
	case FIFO:
		return "FIFO"
	}
	return "Strategy(?)"
}
