package app

import (
	"github.com/yungbote/something-core/internal/brokers/datetime"
	"github.com/yungbote/something-core/internal/brokers/logging"
	"github.com/yungbote/something-core/internal/observability"
	"github.com/yungbote/something-core/internal/platform/logger"
	"github.com/yungbote/something-core/internal/services/foundations/things"
)

type Services struct {
	Things things.Service
}

func wireServices(log *logger.Logger, reposet Repos, metrics *observability.Metrics) Services {
	log.Info("Wiring services...")
	opts := []things.Option{}
	if metrics != nil {
		opts = append(opts, things.WithMetrics(metrics))
	}
	return Services{
		Things: things.New(
			reposet.Thing,
			datetime.NewBroker(),
			logging.NewBroker(log),
			opts...,
		),
	}
}
