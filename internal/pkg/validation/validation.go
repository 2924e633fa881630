package validation

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Rule is one named check against a single field.
type Rule struct {
	Field    string
	Violated bool
	Message  string
}

func IsInvalidID(field string, id uuid.UUID) Rule {
	return Rule{Field: field, Violated: id == uuid.Nil, Message: "Id is required"}
}

func IsInvalidTime(field string, t time.Time) Rule {
	return Rule{Field: field, Violated: t.IsZero(), Message: "Date is required"}
}

func IsSameTime(field string, first, second time.Time, secondName string) Rule {
	return Rule{
		Field:    field,
		Violated: first.Equal(second),
		Message:  fmt.Sprintf("Date is the same as %s", secondName),
	}
}

func IsNotSameTime(field string, first, second time.Time, secondName string) Rule {
	return Rule{
		Field:    field,
		Violated: !first.Equal(second),
		Message:  fmt.Sprintf("Date is not the same as %s", secondName),
	}
}

func IsNotSameID(field string, first, second uuid.UUID, secondName string) Rule {
	return Rule{
		Field:    field,
		Violated: first != second,
		Message:  fmt.Sprintf("Id is not the same as %s", secondName),
	}
}

// IsNotRecent is violated when t is more than window away from now, in either direction.
func IsNotRecent(field string, t, now time.Time, window time.Duration) Rule {
	diff := now.Sub(t)
	if diff < 0 {
		diff = -diff
	}
	return Rule{Field: field, Violated: diff > window, Message: "Date is not recent"}
}

// Collect returns the violated rules grouped by field, or nil when every rule passes.
func Collect(rules ...Rule) map[string][]string {
	violated := lo.Filter(rules, func(r Rule, _ int) bool { return r.Violated })
	if len(violated) == 0 {
		return nil
	}
	out := make(map[string][]string, len(violated))
	for _, r := range violated {
		out[r.Field] = append(out[r.Field], r.Message)
	}
	return out
}
