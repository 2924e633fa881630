package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/something-core/internal/data/repos/thing"
	"github.com/yungbote/something-core/internal/platform/logger"
)

type Repos struct {
	Thing thing.ThingRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Thing: thing.NewThingRepo(db, log),
	}
}
