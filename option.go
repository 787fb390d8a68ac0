package agentcommerce

import (
	"github.com/vitwit/agentcommerce/logger"
	"github.com/vitwit/agentcommerce/metrics"
)

type Option func(*AgentCommerce)

func WithLogger(l logger.Logger) Option {
	return func(a *AgentCommerce) {
		if l != nil {
			a.logger = l
		}
	}
}

func WithMetrics(r metrics.Recorder) Option {
	return func(a *AgentCommerce) {
		if r != nil {
			a.metrics = r
		}
	}
}
