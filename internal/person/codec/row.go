package codec

import (
	"encoding/json"

	commonerrors "github.com/peopleregistry/backend/internal/common/errors"
	"github.com/peopleregistry/backend/internal/person/domain"
)

// DecodeRow rebuilds a Person from stored columns, re-validating username
// and name through the domain constructors. A row violating a bound (for
// example one written by another process) fails to decode and is dropped
// by the caller. A stack column that does not parse yields "no stack".
func DecodeRow(id, username, name, birthDate string, stack *string) (domain.Person, error) {
	if id == "" {
		return domain.Person{}, commonerrors.ErrInvalidStoredRow
	}

	u, err := domain.NewUsername(username)
	if err != nil {
		return domain.Person{}, commonerrors.ErrInvalidStoredRow.WithCause(err)
	}

	n, err := domain.NewName(name)
	if err != nil {
		return domain.Person{}, commonerrors.ErrInvalidStoredRow.WithCause(err)
	}

	person := domain.Person{
		ID:        id,
		Username:  u,
		Name:      n,
		Birthdate: birthDate,
	}

	if stack != nil {
		if tags, err := ParseStackList(json.RawMessage(*stack)); err == nil {
			person.Stack = tags
		}
	}

	return person, nil
}

// EncodeStackColumn serializes a stack to its JSON text column form. An
// absent stack maps to a NULL column.
func EncodeStackColumn(p domain.Person) (*string, error) {
	tags := p.StackStrings()
	if tags == nil {
		return nil, nil
	}
	encoded, err := json.Marshal(tags)
	if err != nil {
		return nil, err
	}
	s := string(encoded)
	return &s, nil
}
