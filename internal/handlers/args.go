package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/mpalomar/ultimateteam/internal/store"
)

// ErrValidation marks malformed or missing tool parameters.
var ErrValidation = errors.New("validation failed")

// Args is the parameter mapping of one tool invocation.
type Args map[string]any

func (a Args) String(name string) (string, error) {
	value, ok := a[name]
	if !ok {
		return "", fmt.Errorf("%w: parameter %q is required", ErrValidation, name)
	}
	s, ok := value.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("%w: parameter %q must be a non-empty string", ErrValidation, name)
	}
	return s, nil
}

func (a Args) StringOr(name, def string) (string, error) {
	if _, ok := a[name]; !ok {
		return def, nil
	}
	return a.String(name)
}

// OptionalString returns nil when the parameter is absent or blank.
func (a Args) OptionalString(name string) (*string, error) {
	value, ok := a[name]
	if !ok || value == nil {
		return nil, nil
	}
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("%w: parameter %q must be a string", ErrValidation, name)
	}
	if s == "" {
		return nil, nil
	}
	return &s, nil
}

func (a Args) Int(name string) (int64, error) {
	value, ok := a[name]
	if !ok {
		return 0, fmt.Errorf("%w: parameter %q is required", ErrValidation, name)
	}
	// JSON numbers decode as float64.
	f, ok := value.(float64)
	if !ok || f != float64(int64(f)) {
		return 0, fmt.Errorf("%w: parameter %q must be an integer", ErrValidation, name)
	}
	return int64(f), nil
}

func (a Args) IntOr(name string, def int64) (int64, error) {
	if _, ok := a[name]; !ok {
		return def, nil
	}
	return a.Int(name)
}

func (a Args) Float(name string) (float64, error) {
	value, ok := a[name]
	if !ok {
		return 0, fmt.Errorf("%w: parameter %q is required", ErrValidation, name)
	}
	f, ok := value.(float64)
	if !ok {
		return 0, fmt.Errorf("%w: parameter %q must be a number", ErrValidation, name)
	}
	return f, nil
}

func (a Args) FloatOr(name string, def float64) (float64, error) {
	if _, ok := a[name]; !ok {
		return def, nil
	}
	return a.Float(name)
}

func (a Args) Date(name string) (time.Time, error) {
	s, err := a.String(name)
	if err != nil {
		return time.Time{}, err
	}
	date, err := time.Parse(store.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: parameter %q must be a date in YYYY-MM-DD format", ErrValidation, name)
	}
	return date, nil
}

func (a Args) OptionalDate(name string) (*time.Time, error) {
	if _, ok := a[name]; !ok {
		return nil, nil
	}
	date, err := a.Date(name)
	if err != nil {
		return nil, err
	}
	return &date, nil
}
