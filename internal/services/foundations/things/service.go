// Package things is the foundation service for Thing records. It validates
// input, calls the storage broker and turns every failure into one of five
// categorized errors, logging each failure once.
package things

import (
	"iter"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/yungbote/something-core/internal/brokers/datetime"
	"github.com/yungbote/something-core/internal/brokers/logging"
	types "github.com/yungbote/something-core/internal/domain/thing"
	"github.com/yungbote/something-core/internal/pkg/dbctx"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks . StorageBroker,DateTimeBroker,LoggingBroker

// StorageBroker is the persistence gateway. Faults come back tagged with the
// sentinels of internal/data/repos/storage.
type StorageBroker interface {
	InsertThing(dbc dbctx.Context, thing *types.Thing) (*types.Thing, error)
	SelectAllThings(dbc dbctx.Context) iter.Seq2[*types.Thing, error]
	SelectThingByID(dbc dbctx.Context, thingID uuid.UUID) (*types.Thing, error)
	UpdateThing(dbc dbctx.Context, thing *types.Thing) (*types.Thing, error)
	DeleteThing(dbc dbctx.Context, thing *types.Thing) (*types.Thing, error)
}

type DateTimeBroker interface {
	datetime.Broker
}

type LoggingBroker interface {
	logging.Broker
}

// FailureRecorder counts failed operations per error category.
type FailureRecorder interface {
	IncThingFailure(category string)
}

type Service interface {
	AddThing(dbc dbctx.Context, thing *types.Thing) (*types.Thing, error)
	RetrieveAllThings(dbc dbctx.Context) iter.Seq2[*types.Thing, error]
	RetrieveThingByID(dbc dbctx.Context, thingID uuid.UUID) (*types.Thing, error)
	ModifyThing(dbc dbctx.Context, thing *types.Thing) (*types.Thing, error)
	RemoveThingByID(dbc dbctx.Context, thingID uuid.UUID) (*types.Thing, error)
}

type service struct {
	storage  StorageBroker
	dateTime DateTimeBroker
	logging  LoggingBroker
	failures FailureRecorder
	tracer   trace.Tracer
}

type Option func(*service)

func WithMetrics(r FailureRecorder) Option {
	return func(s *service) {
		if r != nil {
			s.failures = r
		}
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(s *service) {
		if t != nil {
			s.tracer = t
		}
	}
}

func New(storage StorageBroker, dateTime DateTimeBroker, logging LoggingBroker, opts ...Option) Service {
	s := &service{
		storage:  storage,
		dateTime: dateTime,
		logging:  logging,
		failures: noopRecorder{},
		tracer:   otel.Tracer("github.com/yungbote/something-core/internal/services/foundations/things"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) AddThing(dbc dbctx.Context, thing *types.Thing) (*types.Thing, error) {
	dbc, span := s.startSpan(dbc, "things.AddThing", thing)
	defer span.End()

	return s.tryCatch(span, func() (*types.Thing, error) {
		if err := s.validateThingOnAdd(thing); err != nil {
			return nil, err
		}
		return s.storage.InsertThing(dbc, thing)
	})
}

func (s *service) RetrieveAllThings(dbc dbctx.Context) iter.Seq2[*types.Thing, error] {
	return func(yield func(*types.Thing, error) bool) {
		dbc, span := s.startSpan(dbc, "things.RetrieveAllThings", nil)
		defer span.End()

		for t, err := range s.storage.SelectAllThings(dbc) {
			if err != nil {
				yield(nil, s.tryCatchAll(span, err))
				return
			}
			if !yield(t, nil) {
				return
			}
		}
	}
}

func (s *service) RetrieveThingByID(dbc dbctx.Context, thingID uuid.UUID) (*types.Thing, error) {
	dbc, span := s.startSpan(dbc, "things.RetrieveThingByID", nil)
	span.SetAttributes(attribute.String("thing.id", thingID.String()))
	defer span.End()

	return s.tryCatch(span, func() (*types.Thing, error) {
		if err := validateThingID(thingID); err != nil {
			return nil, err
		}
		maybeThing, err := s.storage.SelectThingByID(dbc, thingID)
		if err != nil {
			return nil, err
		}
		if err := validateStorageThing(maybeThing, thingID); err != nil {
			return nil, err
		}
		return maybeThing, nil
	})
}

func (s *service) ModifyThing(dbc dbctx.Context, thing *types.Thing) (*types.Thing, error) {
	dbc, span := s.startSpan(dbc, "things.ModifyThing", thing)
	defer span.End()

	return s.tryCatch(span, func() (*types.Thing, error) {
		if err := s.validateThingOnModify(thing); err != nil {
			return nil, err
		}
		maybeThing, err := s.storage.SelectThingByID(dbc, thing.ID)
		if err != nil {
			return nil, err
		}
		if err := validateStorageThing(maybeThing, thing.ID); err != nil {
			return nil, err
		}
		if err := validateAgainstStorageThingOnModify(thing, maybeThing); err != nil {
			return nil, err
		}
		return s.storage.UpdateThing(dbc, thing)
	})
}

func (s *service) RemoveThingByID(dbc dbctx.Context, thingID uuid.UUID) (*types.Thing, error) {
	dbc, span := s.startSpan(dbc, "things.RemoveThingByID", nil)
	span.SetAttributes(attribute.String("thing.id", thingID.String()))
	defer span.End()

	return s.tryCatch(span, func() (*types.Thing, error) {
		if err := validateThingID(thingID); err != nil {
			return nil, err
		}
		maybeThing, err := s.storage.SelectThingByID(dbc, thingID)
		if err != nil {
			return nil, err
		}
		if err := validateStorageThing(maybeThing, thingID); err != nil {
			return nil, err
		}
		return s.storage.DeleteThing(dbc, maybeThing)
	})
}

func (s *service) startSpan(dbc dbctx.Context, name string, thing *types.Thing) (dbctx.Context, trace.Span) {
	ctx, span := s.tracer.Start(dbc.Context(), name)
	if thing != nil {
		span.SetAttributes(attribute.String("thing.id", thing.ID.String()))
	}
	return dbc.WithContext(ctx), span
}

type noopRecorder struct{}

func (noopRecorder) IncThingFailure(string) {}
