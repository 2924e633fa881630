package things

import (
	"errors"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/yungbote/something-core/internal/data/repos/storage"
	types "github.com/yungbote/something-core/internal/domain/thing"
	pkgerrors "github.com/yungbote/something-core/internal/pkg/errors"
)

type returningThingFunction func() (*types.Thing, error)

func (s *service) tryCatch(span trace.Span, fn returningThingFunction) (*types.Thing, error) {
	thing, err := fn()
	if err == nil {
		return thing, nil
	}
	return nil, s.fail(span, translate(err))
}

// tryCatchAll translates a failure met while streaming all things.
func (s *service) tryCatchAll(span trace.Span, err error) error {
	if errors.Is(err, storage.ErrUnavailable) {
		return s.fail(span, types.CriticalDependencyError(types.FailedThingStorage(err)))
	}
	return s.fail(span, types.ServiceError(types.FailedThingService(err)))
}

func translate(err error) *pkgerrors.Error {
	switch {
	case pkgerrors.HasCode(err, types.CodeNull),
		pkgerrors.HasCode(err, types.CodeInvalid),
		pkgerrors.HasCode(err, types.CodeNotFound):
		return types.ValidationError(err)
	case errors.Is(err, storage.ErrUnavailable):
		return types.CriticalDependencyError(types.FailedThingStorage(err))
	case errors.Is(err, storage.ErrDuplicateKey):
		return types.DependencyValidationError(types.AlreadyExistsThing(err))
	case errors.Is(err, storage.ErrForeignKeyViolated):
		return types.DependencyValidationError(types.InvalidThingReference(err))
	case errors.Is(err, storage.ErrConcurrencyConflict):
		return types.DependencyValidationError(types.LockedThing(err))
	case errors.Is(err, storage.ErrUpdateFailed):
		return types.DependencyError(types.FailedThingStorage(err))
	default:
		return types.ServiceError(types.FailedThingService(err))
	}
}

// fail is the single place a failing operation is logged.
func (s *service) fail(span trace.Span, categorized *pkgerrors.Error) error {
	if categorized.Category.Critical() {
		s.logging.LogCritical(categorized)
	} else {
		s.logging.LogError(categorized)
	}
	s.failures.IncThingFailure(categorized.Category.String())
	span.RecordError(categorized)
	span.SetStatus(codes.Error, categorized.Category.String())
	return categorized
}
