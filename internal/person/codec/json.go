// Package codec converts between the external representations of a Person
// (the JSON document and the relational row) and the domain aggregate. Both
// paths validate through the domain constructors.
package codec

import (
	"encoding/json"
	"unicode/utf8"

	"github.com/peopleregistry/backend/internal/common/constants"
	commonerrors "github.com/peopleregistry/backend/internal/common/errors"
	"github.com/peopleregistry/backend/internal/person/domain"
)

type Options struct {
	// StrictStack fails the decode on an unparseable stack or an over-long
	// tag instead of degrading to "no stack".
	StrictStack bool
}

type personDocument struct {
	Apelido    *string         `json:"apelido"`
	Nome       *string         `json:"nome"`
	Nascimento *string         `json:"nascimento"`
	Stack      json.RawMessage `json:"stack"`
}

// DecodePerson turns an inbound JSON document into a Person. The id field
// is never read from inbound JSON. A missing or null required field fails
// the whole decode; a present empty string only has to satisfy its bound.
func DecodePerson(data []byte, opts Options) (domain.Person, error) {
	var doc personDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.Person{}, commonerrors.ErrInvalidPersonPayload.WithCause(err)
	}

	if doc.Apelido == nil {
		return domain.Person{}, commonerrors.ErrMissingUsername
	}
	if doc.Nome == nil {
		return domain.Person{}, commonerrors.ErrMissingName
	}
	if doc.Nascimento == nil {
		return domain.Person{}, commonerrors.ErrMissingBirthdate
	}

	username, err := domain.NewUsername(*doc.Apelido)
	if err != nil {
		return domain.Person{}, err
	}

	name, err := domain.NewName(*doc.Nome)
	if err != nil {
		return domain.Person{}, err
	}

	person := domain.Person{
		Username:  username,
		Name:      name,
		Birthdate: *doc.Nascimento,
	}

	stack, err := ParseStackList(doc.Stack)
	if err != nil {
		if opts.StrictStack {
			return domain.Person{}, err
		}
		// Lenient mode: an unparseable stack degrades to "no stack".
		return person, nil
	}

	if opts.StrictStack {
		for _, tag := range stack {
			if utf8.RuneCountInString(string(tag)) > constants.StackTagMaxLength {
				return domain.Person{}, commonerrors.ErrStackTagTooLong
			}
		}
	}

	person.Stack = stack
	return person, nil
}

// ParseStackList parses a JSON array of strings into an ordered tag list.
// A non-array value or any non-string element fails the whole parse; there
// are no partial lists. Absent and null both yield a nil list.
func ParseStackList(raw json.RawMessage) ([]domain.Stack, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var tags []string
	if err := json.Unmarshal(raw, &tags); err != nil {
		return nil, commonerrors.ErrInvalidStack.WithCause(err)
	}

	stack := make([]domain.Stack, len(tags))
	for i, t := range tags {
		stack[i] = domain.Stack(t)
	}
	return stack, nil
}

type PersonDocument struct {
	ID         *string  `json:"id"`
	Apelido    string   `json:"apelido"`
	Nome       string   `json:"nome"`
	Nascimento string   `json:"nascimento"`
	Stack      []string `json:"stack"`
}

// EncodePerson produces the outbound document. An unassigned id encodes to
// null; an absent stack and an empty one both encode to [].
func EncodePerson(p domain.Person) PersonDocument {
	doc := PersonDocument{
		Apelido:    p.Username.String(),
		Nome:       p.Name.String(),
		Nascimento: p.Birthdate,
		Stack:      []string{},
	}
	if p.ID != "" {
		id := p.ID
		doc.ID = &id
	}
	if tags := p.StackStrings(); tags != nil {
		doc.Stack = tags
	}
	return doc
}
