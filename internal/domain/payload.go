package domain

import (
	"time"

	"github.com/itchan-dev/forum-api/internal/errors"
)

// Payload is an untyped use case input: the decoded request body merged with
// path params and the caller identity.
type Payload map[string]any

// String returns the value under key if it is a string, "" otherwise.
func (p Payload) String(key string) string {
	s, _ := p[key].(string)
	return s
}

func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok && s == "" {
		return true
	}
	if t, ok := v.(time.Time); ok && t.IsZero() {
		return true
	}
	return false
}

// requireKeys fails with NOT_CONTAIN_NEEDED_PROPERTY if any key is absent, nil or empty.
func (p Payload) requireKeys(entity string, keys ...string) error {
	for _, k := range keys {
		if isAbsent(p[k]) {
			return errors.Validation(entity, errors.NotContainNeededProperty)
		}
	}
	return nil
}

// requireStrings checks presence of every key before checking any type,
// then returns the values in key order.
func (p Payload) requireStrings(entity string, keys ...string) ([]string, error) {
	if err := p.requireKeys(entity, keys...); err != nil {
		return nil, err
	}
	values := make([]string, len(keys))
	for i, k := range keys {
		s, ok := p[k].(string)
		if !ok {
			return nil, errors.Validation(entity, errors.NotMeetDataTypeSpecification)
		}
		values[i] = s
	}
	return values, nil
}
