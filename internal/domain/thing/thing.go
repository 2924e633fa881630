package thing

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Field names used as keys in validation data.
const (
	FieldID              = "ID"
	FieldCreatedByUserID = "CreatedByUserID"
	FieldCreatedDate     = "CreatedDate"
	FieldUpdatedByUserID = "UpdatedByUserID"
	FieldUpdatedDate     = "UpdatedDate"
)

// Thing is the managed entity. Name, Description and Attributes are the domain
// payload; the four audit fields are owned by callers and checked by the service.
type Thing struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Name        string         `gorm:"column:name;not null;default:''" json:"name"`
	Description string         `gorm:"column:description;not null;default:''" json:"description"`
	Attributes  datatypes.JSON `gorm:"column:attributes" json:"attributes,omitempty"`

	CreatedByUserID uuid.UUID `gorm:"type:uuid;column:created_by_user_id;not null;index" json:"created_by_user_id"`
	CreatedDate     time.Time `gorm:"column:created_date;not null;index" json:"created_date"`
	UpdatedByUserID uuid.UUID `gorm:"type:uuid;column:updated_by_user_id;not null" json:"updated_by_user_id"`
	UpdatedDate     time.Time `gorm:"column:updated_date;not null" json:"updated_date"`
}

func (Thing) TableName() string { return "things" }
