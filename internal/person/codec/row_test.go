package codec

import (
	"errors"
	"strings"
	"testing"

	commonerrors "github.com/peopleregistry/backend/internal/common/errors"
	"github.com/peopleregistry/backend/internal/person/domain"
)

func strPtr(s string) *string {
	return &s
}

func TestDecodeRow_Success(t *testing.T) {
	p, err := DecodeRow("3f6c0a9e-1d1f-4f4b-8f22-6b9f1f6a2c01", "zeh", "Jose", "2000-01-01", strPtr(`["C#","Node"]`))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !p.Persisted() {
		t.Error("a decoded row must carry its id")
	}
	if p.Username.String() != "zeh" || p.Name.String() != "Jose" {
		t.Errorf("unexpected decoded person: %+v", p)
	}
	if len(p.Stack) != 2 || p.Stack[0] != "C#" || p.Stack[1] != "Node" {
		t.Errorf("unexpected stack: %v", p.Stack)
	}
}

func TestDecodeRow_EmptyID(t *testing.T) {
	_, err := DecodeRow("", "zeh", "Jose", "2000-01-01", nil)
	if !errors.Is(err, commonerrors.ErrInvalidStoredRow) {
		t.Errorf("expected ErrInvalidStoredRow, got %v", err)
	}
}

func TestDecodeRow_BoundViolation(t *testing.T) {
	testCases := []struct {
		name     string
		username string
		fullName string
	}{
		{"username over bound", strings.Repeat("a", 33), "Jose"},
		{"name over bound", "zeh", strings.Repeat("b", 101)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeRow("3f6c0a9e-1d1f-4f4b-8f22-6b9f1f6a2c01", tc.username, tc.fullName, "2000-01-01", nil)
			if !errors.Is(err, commonerrors.ErrInvalidStoredRow) {
				t.Errorf("expected ErrInvalidStoredRow, got %v", err)
			}
		})
	}
}

func TestDecodeRow_StackColumn(t *testing.T) {
	noStack, err := DecodeRow("3f6c0a9e-1d1f-4f4b-8f22-6b9f1f6a2c01", "zeh", "Jose", "2000-01-01", nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if noStack.Stack != nil {
		t.Errorf("NULL column must decode to absent stack, got %v", noStack.Stack)
	}

	malformed, err := DecodeRow("3f6c0a9e-1d1f-4f4b-8f22-6b9f1f6a2c01", "zeh", "Jose", "2000-01-01", strPtr(`not json`))
	if err != nil {
		t.Fatalf("a malformed stack column must not fail the row, got %v", err)
	}
	if malformed.Stack != nil {
		t.Errorf("malformed column must degrade to absent stack, got %v", malformed.Stack)
	}
}

func TestEncodeStackColumn(t *testing.T) {
	username, _ := domain.NewUsername("zeh")
	name, _ := domain.NewName("Jose")

	absent := domain.Person{Username: username, Name: name, Birthdate: "2000-01-01"}
	col, err := EncodeStackColumn(absent)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if col != nil {
		t.Errorf("absent stack must map to NULL, got %q", *col)
	}

	withStack := absent
	withStack.Stack = []domain.Stack{"C#", "Node"}
	col, err = EncodeStackColumn(withStack)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if col == nil || *col != `["C#","Node"]` {
		t.Errorf("unexpected column value: %v", col)
	}
}

func TestRowRoundTrip(t *testing.T) {
	username, _ := domain.NewUsername("zeh")
	name, _ := domain.NewName("Jose")
	original := domain.Person{
		ID:        "3f6c0a9e-1d1f-4f4b-8f22-6b9f1f6a2c01",
		Username:  username,
		Name:      name,
		Birthdate: "2000-01-01",
		Stack:     []domain.Stack{"C#", "Node"},
	}

	col, err := EncodeStackColumn(original)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	decoded, err := DecodeRow(original.ID, original.Username.String(), original.Name.String(), original.Birthdate, col)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if decoded.ID != original.ID || decoded.Birthdate != original.Birthdate {
		t.Errorf("row round trip changed the person: %+v", decoded)
	}
	if len(decoded.Stack) != 2 || decoded.Stack[0] != "C#" || decoded.Stack[1] != "Node" {
		t.Errorf("row round trip changed the stack: %v", decoded.Stack)
	}
}
