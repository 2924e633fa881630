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

func TestAddThing(t *testing.T) {
	f := newFixture(t)
	now := currentTime()
	input := randomThing(now)
	stored := *input

	f.dateTime.EXPECT().CurrentTime().Return(now).Times(1)
	f.storage.EXPECT().InsertThing(gomock.Any(), input).Return(&stored, nil).Times(1)

	got, err := f.service.AddThing(dbctx.Background(), input)
	require.NoError(t, err)
	require.Equal(t, &stored, got)
	require.Empty(t, f.failures.counts)
}

func TestAddThingNull(t *testing.T) {
	f := newFixture(t)
	want := types.ValidationError(types.NullThing())

	f.logging.EXPECT().LogError(sameErrorAs(want, nil)).Times(1)

	got, err := f.service.AddThing(dbctx.Background(), nil)
	require.Nil(t, got)
	requireSameError(t, want, err, nil)
	require.Equal(t, 1, f.failures.counts["validation"])
}

func TestAddThingInvalidFields(t *testing.T) {
	f := newFixture(t)
	now := currentTime()
	want := types.ValidationError(types.InvalidThing(map[string][]string{
		types.FieldID:              {"Id is required"},
		types.FieldCreatedDate:     {"Date is required", "Date is not recent"},
		types.FieldCreatedByUserID: {"Id is required"},
		types.FieldUpdatedDate:     {"Date is required"},
		types.FieldUpdatedByUserID: {"Id is required"},
	}))

	f.dateTime.EXPECT().CurrentTime().Return(now).Times(1)
	f.logging.EXPECT().LogError(sameErrorAs(want, nil)).Times(1)

	_, err := f.service.AddThing(dbctx.Background(), &types.Thing{})
	requireSameError(t, want, err, nil)
}

func TestAddThingUpdatedAuditMismatch(t *testing.T) {
	f := newFixture(t)
	now := currentTime()
	input := randomThing(now)
	input.UpdatedDate = now.Add(time.Second)
	input.UpdatedByUserID = uuid.New()
	want := types.ValidationError(types.InvalidThing(map[string][]string{
		types.FieldUpdatedDate:     {"Date is not the same as CreatedDate"},
		types.FieldUpdatedByUserID: {"Id is not the same as CreatedByUserID"},
	}))

	f.dateTime.EXPECT().CurrentTime().Return(now).Times(1)
	f.logging.EXPECT().LogError(sameErrorAs(want, nil)).Times(1)

	_, err := f.service.AddThing(dbctx.Background(), input)
	requireSameError(t, want, err, nil)
}

func TestAddThingRecency(t *testing.T) {
	cases := []struct {
		name    string
		offset  time.Duration
		invalid bool
	}{
		{"exactly one minute ago", -time.Minute, false},
		{"exactly one minute ahead", time.Minute, false},
		{"past the window", -time.Minute - time.Second, true},
		{"ahead of the window", time.Minute + time.Second, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			now := currentTime()
			input := randomThing(now.Add(tc.offset))

			f.dateTime.EXPECT().CurrentTime().Return(now).Times(1)
			if !tc.invalid {
				f.storage.EXPECT().InsertThing(gomock.Any(), input).Return(input, nil).Times(1)
				_, err := f.service.AddThing(dbctx.Background(), input)
				require.NoError(t, err)
				return
			}
			want := types.ValidationError(types.InvalidThing(map[string][]string{
				types.FieldCreatedDate: {"Date is not recent"},
			}))
			f.logging.EXPECT().LogError(sameErrorAs(want, nil)).Times(1)
			_, err := f.service.AddThing(dbctx.Background(), input)
			requireSameError(t, want, err, nil)
		})
	}
}

func TestAddThingStorageFailures(t *testing.T) {
	raw := errors.New("boom")
	cases := []struct {
		name     string
		err      error
		want     func(cause error) error
		critical bool
		category string
	}{
		{
			name:     "unavailable",
			err:      storage.Classify(storage.OpWrite, errors.New("dial tcp: connection refused")),
			want:     func(c error) error { return types.CriticalDependencyError(types.FailedThingStorage(c)) },
			critical: true,
			category: "critical_dependency",
		},
		{
			name:     "duplicate key",
			err:      storage.Classify(storage.OpWrite, errors.New("duplicate key value violates unique constraint")),
			want:     func(c error) error { return types.DependencyValidationError(types.AlreadyExistsThing(c)) },
			category: "dependency_validation",
		},
		{
			name:     "foreign key",
			err:      storage.Classify(storage.OpWrite, errors.New("violates foreign key constraint")),
			want:     func(c error) error { return types.DependencyValidationError(types.InvalidThingReference(c)) },
			category: "dependency_validation",
		},
		{
			name:     "update failed",
			err:      storage.Classify(storage.OpWrite, errors.New("value too long for type")),
			want:     func(c error) error { return types.DependencyError(types.FailedThingStorage(c)) },
			category: "dependency",
		},
		{
			name:     "unexpected",
			err:      raw,
			want:     func(c error) error { return types.ServiceError(types.FailedThingService(c)) },
			category: "service",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			now := currentTime()
			input := randomThing(now)
			want := mustCategorized(t, tc.want(tc.err))

			f.dateTime.EXPECT().CurrentTime().Return(now).Times(1)
			f.storage.EXPECT().InsertThing(gomock.Any(), input).Return(nil, tc.err).Times(1)
			if tc.critical {
				f.logging.EXPECT().LogCritical(sameErrorAs(want, tc.err)).Times(1)
			} else {
				f.logging.EXPECT().LogError(sameErrorAs(want, tc.err)).Times(1)
			}

			got, err := f.service.AddThing(dbctx.Background(), input)
			require.Nil(t, got)
			requireSameError(t, want, err, tc.err)
			require.Equal(t, map[string]int{tc.category: 1}, f.failures.counts)
		})
	}
}
