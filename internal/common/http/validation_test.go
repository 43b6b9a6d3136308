package http

import (
	"errors"
	"testing"

	commonerrors "github.com/peopleregistry/backend/internal/common/errors"
)

func TestValidateUUID(t *testing.T) {
	if err := ValidateUUID("3f6c0a9e-1d1f-4f4b-8f22-6b9f1f6a2c01"); err != nil {
		t.Errorf("expected a valid uuid to pass, got %v", err)
	}

	if err := ValidateUUID(""); !errors.Is(err, commonerrors.ErrEmptyUUID) {
		t.Errorf("expected ErrEmptyUUID, got %v", err)
	}

	if err := ValidateUUID("not-a-uuid"); !errors.Is(err, commonerrors.ErrInvalidUUIDFormat) {
		t.Errorf("expected ErrInvalidUUIDFormat, got %v", err)
	}
}

func TestExtractPersonIDFromPath(t *testing.T) {
	testCases := []struct {
		name   string
		path   string
		wantID string
		wantOK bool
	}{
		{"simple id", "/pessoas/abc", "abc", true},
		{"uuid id", "/pessoas/3f6c0a9e-1d1f-4f4b-8f22-6b9f1f6a2c01", "3f6c0a9e-1d1f-4f4b-8f22-6b9f1f6a2c01", true},
		{"trailing slash", "/pessoas/abc/", "abc", true},
		{"missing id", "/pessoas/", "", false},
		{"wrong prefix", "/users/abc", "", false},
		{"trailing segment", "/pessoas/abc/extra", "", false},
		{"trailing segment after uuid", "/pessoas/3f6c0a9e-1d1f-4f4b-8f22-6b9f1f6a2c01/extra", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, ok := ExtractPersonIDFromPath(tc.path, "/pessoas/")
			if id != tc.wantID || ok != tc.wantOK {
				t.Errorf("ExtractPersonIDFromPath(%q) = (%q, %v), want (%q, %v)", tc.path, id, ok, tc.wantID, tc.wantOK)
			}
		})
	}
}
