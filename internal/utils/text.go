package utils

import (
	"github.com/google/uuid"
	"github.com/itchan-dev/forum-api/internal/domain"
	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// NewId is the id generator injected into the storage adapters.
func NewId() string {
	return uuid.NewString()
}

// SanitizeText strips every HTML tag from user supplied text.
func SanitizeText(s string) string {
	return strictPolicy.Sanitize(s)
}

// SanitizePayload sanitizes the string values stored under keys. Other values are
// left alone so entity type checks still see them.
func SanitizePayload(p domain.Payload, keys ...string) {
	for _, key := range keys {
		if s, ok := p[key].(string); ok {
			p[key] = SanitizeText(s)
		}
	}
}
