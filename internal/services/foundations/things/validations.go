package things

import (
	"time"

	"github.com/google/uuid"

	types "github.com/yungbote/something-core/internal/domain/thing"
	"github.com/yungbote/something-core/internal/pkg/validation"
)

// recentWindow bounds how far an audit date may sit from the current time, either way.
const recentWindow = time.Minute

func (s *service) validateThingOnAdd(thing *types.Thing) error {
	if thing == nil {
		return types.NullThing()
	}
	return invalidIfAny(validation.Collect(
		validation.IsInvalidID(types.FieldID, thing.ID),
		validation.IsInvalidTime(types.FieldCreatedDate, thing.CreatedDate),
		validation.IsInvalidID(types.FieldCreatedByUserID, thing.CreatedByUserID),
		validation.IsInvalidTime(types.FieldUpdatedDate, thing.UpdatedDate),
		validation.IsInvalidID(types.FieldUpdatedByUserID, thing.UpdatedByUserID),
		validation.IsNotSameTime(types.FieldUpdatedDate, thing.UpdatedDate, thing.CreatedDate, types.FieldCreatedDate),
		validation.IsNotSameID(types.FieldUpdatedByUserID, thing.UpdatedByUserID, thing.CreatedByUserID, types.FieldCreatedByUserID),
		s.isNotRecent(types.FieldCreatedDate, thing.CreatedDate),
	))
}

func (s *service) validateThingOnModify(thing *types.Thing) error {
	if thing == nil {
		return types.NullThing()
	}
	return invalidIfAny(validation.Collect(
		validation.IsInvalidID(types.FieldID, thing.ID),
		validation.IsInvalidTime(types.FieldCreatedDate, thing.CreatedDate),
		validation.IsInvalidID(types.FieldCreatedByUserID, thing.CreatedByUserID),
		validation.IsInvalidTime(types.FieldUpdatedDate, thing.UpdatedDate),
		validation.IsInvalidID(types.FieldUpdatedByUserID, thing.UpdatedByUserID),
		validation.IsSameTime(types.FieldUpdatedDate, thing.UpdatedDate, thing.CreatedDate, types.FieldCreatedDate),
		s.isNotRecent(types.FieldUpdatedDate, thing.UpdatedDate),
	))
}

func validateThingID(thingID uuid.UUID) error {
	return invalidIfAny(validation.Collect(
		validation.IsInvalidID(types.FieldID, thingID),
	))
}

func validateStorageThing(maybeThing *types.Thing, thingID uuid.UUID) error {
	if maybeThing == nil {
		return types.NotFoundThing(thingID)
	}
	return nil
}

func validateAgainstStorageThingOnModify(input, stored *types.Thing) error {
	return invalidIfAny(validation.Collect(
		validation.IsNotSameTime(types.FieldCreatedDate, input.CreatedDate, stored.CreatedDate, types.FieldCreatedDate),
		validation.IsNotSameID(types.FieldCreatedByUserID, input.CreatedByUserID, stored.CreatedByUserID, types.FieldCreatedByUserID),
		validation.IsSameTime(types.FieldUpdatedDate, input.UpdatedDate, stored.UpdatedDate, types.FieldUpdatedDate),
	))
}

func (s *service) isNotRecent(field string, t time.Time) validation.Rule {
	return validation.IsNotRecent(field, t, s.dateTime.CurrentTime(), recentWindow)
}

func invalidIfAny(data map[string][]string) error {
	if data == nil {
		return nil
	}
	return types.InvalidThing(data)
}
