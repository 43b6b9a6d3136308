package http

import (
	"strings"

	"github.com/google/uuid"

	commonerrors "github.com/peopleregistry/backend/internal/common/errors"
)

func ValidateUUID(s string) error {
	if s == "" {
		return commonerrors.ErrEmptyUUID
	}
	if _, err := uuid.Parse(s); err != nil {
		return commonerrors.ErrInvalidUUIDFormat.WithCause(err)
	}
	return nil
}

// ExtractPersonIDFromPath returns the single id segment after prefix. A
// bare trailing slash is tolerated; any further segment makes the path
// invalid rather than silently resolving to the id.
func ExtractPersonIDFromPath(path, prefix string) (string, bool) {
	if !strings.HasPrefix(path, prefix) {
		return "", false
	}

	remaining := strings.TrimPrefix(path, prefix)
	parts := strings.Split(remaining, "/")
	if len(parts) == 0 || parts[0] == "" {
		return "", false
	}
	for _, extra := range parts[1:] {
		if extra != "" {
			return "", false
		}
	}

	return parts[0], true
}
