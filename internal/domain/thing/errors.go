package thing

import (
	"fmt"

	"github.com/google/uuid"

	pkgerrors "github.com/yungbote/something-core/internal/pkg/errors"
)

// Codes of the inner errors the service raises or wraps store faults in.
const (
	CodeNull             = "null_thing"
	CodeInvalid          = "invalid_thing"
	CodeNotFound         = "not_found_thing"
	CodeAlreadyExists    = "already_exists_thing"
	CodeInvalidReference = "invalid_thing_reference"
	CodeLocked           = "locked_thing"
	CodeFailedStorage    = "failed_thing_storage"
	CodeFailedService    = "failed_thing_service"
)

func NullThing() *pkgerrors.Error {
	return pkgerrors.New(CodeNull, "Thing is null.")
}

// InvalidThing carries one or more messages per offending field.
func InvalidThing(data map[string][]string) *pkgerrors.Error {
	e := pkgerrors.New(CodeInvalid, "Invalid Thing. Please correct the errors and try again.")
	for field, messages := range data {
		for _, m := range messages {
			e.UpsertData(field, m)
		}
	}
	return e
}

func NotFoundThing(id uuid.UUID) *pkgerrors.Error {
	return pkgerrors.New(CodeNotFound, fmt.Sprintf("Couldn't find Thing with ThingId: %s.", id))
}

func AlreadyExistsThing(cause error) *pkgerrors.Error {
	return pkgerrors.Wrap(cause, CodeAlreadyExists, "Thing with the same Id already exists.")
}

func InvalidThingReference(cause error) *pkgerrors.Error {
	return pkgerrors.Wrap(cause, CodeInvalidReference, "Invalid Thing reference error occurred.")
}

func LockedThing(cause error) *pkgerrors.Error {
	return pkgerrors.Wrap(cause, CodeLocked, "Locked Thing record exception, please try again later")
}

func FailedThingStorage(cause error) *pkgerrors.Error {
	return pkgerrors.Wrap(cause, CodeFailedStorage, "Failed Thing storage error occurred, contact support.")
}

func FailedThingService(cause error) *pkgerrors.Error {
	return pkgerrors.Wrap(cause, CodeFailedService, "Failed Thing service occurred, please contact support")
}

func ValidationError(inner error) *pkgerrors.Error {
	return pkgerrors.Categorize(pkgerrors.CategoryValidation, inner,
		"Thing validation errors occurred, please try again.")
}

func DependencyValidationError(inner error) *pkgerrors.Error {
	return pkgerrors.Categorize(pkgerrors.CategoryDependencyValidation, inner,
		"Thing dependency validation occurred, please try again.")
}

func DependencyError(inner error) *pkgerrors.Error {
	return pkgerrors.Categorize(pkgerrors.CategoryDependency, inner,
		"Thing dependency error occurred, contact support.")
}

func CriticalDependencyError(inner error) *pkgerrors.Error {
	return pkgerrors.Categorize(pkgerrors.CategoryCriticalDependency, inner,
		"Thing dependency error occurred, contact support.")
}

func ServiceError(inner error) *pkgerrors.Error {
	return pkgerrors.Categorize(pkgerrors.CategoryService, inner,
		"Thing service error occurred, contact support.")
}
