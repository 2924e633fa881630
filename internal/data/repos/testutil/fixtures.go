package testutil

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	types "github.com/yungbote/something-core/internal/domain/thing"
)

// NewThing builds a thing whose audit fields are consistent for an add at now.
func NewThing(now time.Time) *types.Thing {
	userID := uuid.New()
	return &types.Thing{
		ID:              uuid.New(),
		Name:            "thing-" + uuid.NewString()[:8],
		Description:     "fixture",
		Attributes:      datatypes.JSON([]byte(`{"color":"blue"}`)),
		CreatedByUserID: userID,
		CreatedDate:     now,
		UpdatedByUserID: userID,
		UpdatedDate:     now,
	}
}
