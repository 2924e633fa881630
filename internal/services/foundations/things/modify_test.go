package things

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/yungbote/something-core/internal/data/repos/storage"
	types "github.com/yungbote/something-core/internal/domain/thing"
	"github.com/yungbote/something-core/internal/pkg/dbctx"
)

func TestModifyThing(t *testing.T) {
	f := newFixture(t)
	now := currentTime()
	stored, input := randomModifiedThing(now)
	updated := *input

	gomock.InOrder(
		f.dateTime.EXPECT().CurrentTime().Return(now),
		f.storage.EXPECT().SelectThingByID(gomock.Any(), input.ID).Return(stored, nil),
		f.storage.EXPECT().UpdateThing(gomock.Any(), input).Return(&updated, nil),
	)

	got, err := f.service.ModifyThing(dbctx.Background(), input)
	require.NoError(t, err)
	require.Equal(t, &updated, got)
}

func TestModifyThingNull(t *testing.T) {
	f := newFixture(t)
	want := types.ValidationError(types.NullThing())
	f.logging.EXPECT().LogError(sameErrorAs(want, nil)).Times(1)

	_, err := f.service.ModifyThing(dbctx.Background(), nil)
	requireSameError(t, want, err, nil)
}

func TestModifyThingInvalidFields(t *testing.T) {
	f := newFixture(t)
	now := currentTime()
	want := types.ValidationError(types.InvalidThing(map[string][]string{
		types.FieldID:              {"Id is required"},
		types.FieldCreatedDate:     {"Date is required"},
		types.FieldCreatedByUserID: {"Id is required"},
		types.FieldUpdatedDate:     {"Date is required", "Date is the same as CreatedDate", "Date is not recent"},
		types.FieldUpdatedByUserID: {"Id is required"},
	}))

	f.dateTime.EXPECT().CurrentTime().Return(now).Times(1)
	f.logging.EXPECT().LogError(sameErrorAs(want, nil)).Times(1)

	_, err := f.service.ModifyThing(dbctx.Background(), &types.Thing{})
	requireSameError(t, want, err, nil)
}

func TestModifyThingUpdatedDateSameAsCreated(t *testing.T) {
	f := newFixture(t)
	now := currentTime()
	input := randomThing(now)
	want := types.ValidationError(types.InvalidThing(map[string][]string{
		types.FieldUpdatedDate: {"Date is the same as CreatedDate"},
	}))

	f.dateTime.EXPECT().CurrentTime().Return(now).Times(1)
	f.logging.EXPECT().LogError(sameErrorAs(want, nil)).Times(1)

	_, err := f.service.ModifyThing(dbctx.Background(), input)
	requireSameError(t, want, err, nil)
}

func TestModifyThingNotRecent(t *testing.T) {
	f := newFixture(t)
	now := currentTime()
	_, input := randomModifiedThing(now)
	input.UpdatedDate = now.Add(-2 * time.Minute)
	want := types.ValidationError(types.InvalidThing(map[string][]string{
		types.FieldUpdatedDate: {"Date is not recent"},
	}))

	f.dateTime.EXPECT().CurrentTime().Return(now).Times(1)
	f.logging.EXPECT().LogError(sameErrorAs(want, nil)).Times(1)

	_, err := f.service.ModifyThing(dbctx.Background(), input)
	requireSameError(t, want, err, nil)
}

func TestModifyThingNotFound(t *testing.T) {
	f := newFixture(t)
	now := currentTime()
	_, input := randomModifiedThing(now)
	want := types.ValidationError(types.NotFoundThing(input.ID))

	f.dateTime.EXPECT().CurrentTime().Return(now).Times(1)
	f.storage.EXPECT().SelectThingByID(gomock.Any(), input.ID).Return(nil, nil).Times(1)
	f.logging.EXPECT().LogError(sameErrorAs(want, nil)).Times(1)

	_, err := f.service.ModifyThing(dbctx.Background(), input)
	requireSameError(t, want, err, nil)
}

func TestModifyThingAgainstStoredSnapshot(t *testing.T) {
	f := newFixture(t)
	now := currentTime()
	stored, input := randomModifiedThing(now)
	stored.CreatedDate = stored.CreatedDate.Add(-time.Hour)
	stored.CreatedByUserID = uuid.New()
	stored.UpdatedDate = input.UpdatedDate
	want := types.ValidationError(types.InvalidThing(map[string][]string{
		types.FieldCreatedDate:     {"Date is not the same as CreatedDate"},
		types.FieldCreatedByUserID: {"Id is not the same as CreatedByUserID"},
		types.FieldUpdatedDate:     {"Date is the same as UpdatedDate"},
	}))

	f.dateTime.EXPECT().CurrentTime().Return(now).Times(1)
	f.storage.EXPECT().SelectThingByID(gomock.Any(), input.ID).Return(stored, nil).Times(1)
	f.logging.EXPECT().LogError(sameErrorAs(want, nil)).Times(1)

	_, err := f.service.ModifyThing(dbctx.Background(), input)
	requireSameError(t, want, err, nil)
}

func TestModifyThingStorageFailures(t *testing.T) {
	cases := []struct {
		name     string
		onSelect bool
		err      error
		want     func(cause error) error
		critical bool
	}{
		{
			name:     "unavailable on select",
			onSelect: true,
			err:      storage.Classify(storage.OpRead, errors.New("connection refused")),
			want:     func(c error) error { return types.CriticalDependencyError(types.FailedThingStorage(c)) },
			critical: true,
		},
		{
			name:     "unavailable on update",
			err:      storage.Classify(storage.OpWrite, errors.New("connection refused")),
			want:     func(c error) error { return types.CriticalDependencyError(types.FailedThingStorage(c)) },
			critical: true,
		},
		{
			name: "concurrency conflict",
			err:  storage.ErrConcurrencyConflict,
			want: func(c error) error { return types.DependencyValidationError(types.LockedThing(c)) },
		},
		{
			name: "foreign key",
			err:  storage.Classify(storage.OpWrite, errors.New("violates foreign key constraint")),
			want: func(c error) error { return types.DependencyValidationError(types.InvalidThingReference(c)) },
		},
		{
			name: "update failed",
			err:  storage.Classify(storage.OpWrite, errors.New("value too long")),
			want: func(c error) error { return types.DependencyError(types.FailedThingStorage(c)) },
		},
		{
			name: "unexpected",
			err:  errors.New("boom"),
			want: func(c error) error { return types.ServiceError(types.FailedThingService(c)) },
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			now := currentTime()
			stored, input := randomModifiedThing(now)
			want := mustCategorized(t, tc.want(tc.err))

			f.dateTime.EXPECT().CurrentTime().Return(now).Times(1)
			if tc.onSelect {
				f.storage.EXPECT().SelectThingByID(gomock.Any(), input.ID).Return(nil, tc.err).Times(1)
			} else {
				f.storage.EXPECT().SelectThingByID(gomock.Any(), input.ID).Return(stored, nil).Times(1)
				f.storage.EXPECT().UpdateThing(gomock.Any(), input).Return(nil, tc.err).Times(1)
			}
			if tc.critical {
				f.logging.EXPECT().LogCritical(sameErrorAs(want, tc.err)).Times(1)
			} else {
				f.logging.EXPECT().LogError(sameErrorAs(want, tc.err)).Times(1)
			}

			_, err := f.service.ModifyThing(dbctx.Background(), input)
			requireSameError(t, want, err, tc.err)
		})
	}
}
