// Package errors carries the service-facing error shape: a fixed message, an
// optional wrapped cause, optional per-field data and, on the outermost error,
// the category callers branch on.
package errors

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrNotFound is a generic sentinel for missing resources.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")
)

type Category int

const (
	CategoryNone Category = iota
	CategoryValidation
	CategoryDependencyValidation
	CategoryDependency
	CategoryCriticalDependency
	CategoryService
)

func (c Category) String() string {
	switch c {
	case CategoryValidation:
		return "validation"
	case CategoryDependencyValidation:
		return "dependency_validation"
	case CategoryDependency:
		return "dependency"
	case CategoryCriticalDependency:
		return "critical_dependency"
	case CategoryService:
		return "service"
	default:
		return "none"
	}
}

// Critical reports whether errors of this category must be logged at critical severity.
func (c Category) Critical() bool { return c == CategoryCriticalDependency }

type Error struct {
	Category Category
	Code     string
	Message  string
	Err      error
	Data     map[string][]string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Wrap(err error, code, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Categorize wraps inner as the outermost error of an operation.
func Categorize(category Category, inner error, message string) *Error {
	return &Error{Category: category, Message: message, Err: inner}
}

// UpsertData appends value to the messages recorded under key.
func (e *Error) UpsertData(key, value string) {
	if e.Data == nil {
		e.Data = map[string][]string{}
	}
	e.Data[key] = append(e.Data[key], value)
}

func (e *Error) HasData() bool { return e != nil && len(e.Data) > 0 }

// DataString renders field data deterministically, e.g. "CreatedDate: Date is required".
func (e *Error) DataString() string {
	if !e.HasData() {
		return ""
	}
	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Data[k], ", "))
	}
	return strings.Join(parts, "; ")
}

// CategoryOf returns the category of the outermost categorized error in err's chain.
func CategoryOf(err error) (Category, bool) {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return CategoryNone, false
		}
		if e.Category != CategoryNone {
			return e.Category, true
		}
		err = e.Err
	}
	return CategoryNone, false
}

// HasCode reports whether any *Error in err's chain carries code.
func HasCode(err error, code string) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Err
	}
	return false
}

// Inner returns the error wrapped directly by err when err is an *Error.
func Inner(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return e.Err
	}
	return nil
}

// DataOf returns the field data of the first *Error in err's chain that has any.
func DataOf(err error) map[string][]string {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return nil
		}
		if e.HasData() {
			return e.Data
		}
		err = e.Err
	}
	return nil
}
