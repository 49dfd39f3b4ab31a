package usecase

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrPostNotFound   = errors.New("post not found")
	ErrActionInFlight = errors.New("a moderation action is already in flight")
	ErrNoActionChosen = errors.New("no moderation action is awaiting confirmation")
	ErrInvalidAction  = errors.New("unknown moderation action")
	ErrSessionClosed  = errors.New("dashboard session is closed")
	ErrBackend        = errors.New("admin api request failed")
)

// ValidationError lists problems per form field. It is returned before any network call.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + e.Fields[k]
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	e.Fields[field] = msg
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
