package scopology

import (
	"go.uber.org/zap"
)

var defaultRegistryNames = []string{"entities", "registry", "classes"}

type (
	options struct {
		maxDepth      int
		cycleCheck    bool
		registryNames []string
		policy        AccessPolicy
		logger        *zap.Logger
	}

	//Option represents enumeration option
	Option func(o *options)

	//Options represents enumeration options
	Options []Option
)

// Apply applies options
func (o Options) Apply(opts *options) {
	if len(o) == 0 {
		return
	}
	for _, opt := range o {
		opt(opts)
	}
}

func newOptions(opts []Option) *options {
	ret := &options{registryNames: defaultRegistryNames}
	Options(opts).Apply(ret)
	if ret.logger == nil {
		ret.logger = zap.NewNop()
	}
	return ret
}

// WithMaxDepth fails scope chain traversal once more than maxDepth scopes would be visited, zero or less means unlimited
func WithMaxDepth(maxDepth int) Option {
	return func(o *options) {
		o.maxDepth = maxDepth
	}
}

// WithCycleCheck tracks visited scopes and fails on a cyclic scope chain
func WithCycleCheck() Option {
	return func(o *options) {
		o.cycleCheck = true
	}
}

// WithRegistryNames overrides field names used to locate registry storage
func WithRegistryNames(names ...string) Option {
	return func(o *options) {
		o.registryNames = names
	}
}

// WithAccessPolicy sets policy consulted before registry storage is read
func WithAccessPolicy(policy AccessPolicy) Option {
	return func(o *options) {
		o.policy = policy
	}
}

// WithLogger sets debug logger
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
