package app

import (
	"database/sql"

	"github.com/yungbote/something-core/internal/http/handlers"
	"github.com/yungbote/something-core/internal/platform/logger"
)

type Handlers struct {
	Thing  *handlers.ThingHandler
	Health *handlers.HealthHandler
}

func wireHandlers(log *logger.Logger, serviceset Services, sqlDB *sql.DB) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Thing:  handlers.NewThingHandler(serviceset.Things),
		Health: handlers.NewHealthHandler(sqlDB),
	}
}
