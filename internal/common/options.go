package common

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"subprofile/internal/config"
)

// ServiceOptions defines common options for service constructors
type ServiceOptions struct {
	Logger     *zap.Logger
	Config     *config.Config
	Registerer prometheus.Registerer
	Env        string
}

// Option defines a service option modifier
type Option func(*ServiceOptions)

func WithLogger(logger *zap.Logger) Option {
	return func(o *ServiceOptions) {
		o.Logger = logger
	}
}

// WithConfig skips loading the config file and uses cfg instead.
func WithConfig(cfg *config.Config) Option {
	return func(o *ServiceOptions) {
		o.Config = cfg
	}
}

// WithRegisterer sets where metrics are registered. Defaults to
// prometheus.DefaultRegisterer.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *ServiceOptions) {
		o.Registerer = reg
	}
}

func WithEnv(env string) Option {
	return func(o *ServiceOptions) {
		o.Env = env
	}
}
