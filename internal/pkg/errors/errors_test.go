package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCategoryOfFindsOutermostCategory(t *testing.T) {
	raw := errors.New("dial tcp: connection refused")
	inner := Wrap(raw, "failed_storage", "storage failed")
	outer := Categorize(CategoryCriticalDependency, inner, "dependency failed")

	got, ok := CategoryOf(fmt.Errorf("handler: %w", outer))
	require.True(t, ok)
	require.Equal(t, CategoryCriticalDependency, got)
	require.True(t, got.Critical())
	require.ErrorIs(t, outer, raw)
	require.Same(t, inner, Inner(outer))
	require.True(t, HasCode(outer, "failed_storage"))
	require.False(t, HasCode(outer, "locked"))
}

func TestCategoryOfUncategorized(t *testing.T) {
	_, ok := CategoryOf(New("plain", "plain"))
	require.False(t, ok)

	_, ok = CategoryOf(errors.New("std"))
	require.False(t, ok)
}

func TestUpsertDataAccumulatesPerKey(t *testing.T) {
	e := New("invalid_thing", "invalid")
	require.False(t, e.HasData())

	e.UpsertData("UpdatedDate", "Date is required")
	e.UpsertData("UpdatedDate", "Date is not recent")
	e.UpsertData("ID", "Id is required")

	require.Equal(t, []string{"Date is required", "Date is not recent"}, e.Data["UpdatedDate"])
	require.Equal(t, "ID: Id is required; UpdatedDate: Date is required, Date is not recent", e.DataString())

	outer := Categorize(CategoryValidation, e, "validation failed")
	require.Equal(t, e.Data, DataOf(outer))
}

func TestCategoryString(t *testing.T) {
	cases := map[Category]string{
		CategoryValidation:           "validation",
		CategoryDependencyValidation: "dependency_validation",
		CategoryDependency:           "dependency",
		CategoryCriticalDependency:   "critical_dependency",
		CategoryService:              "service",
		CategoryNone:                 "none",
	}
	for c, want := range cases {
		require.Equal(t, want, c.String())
	}
}
