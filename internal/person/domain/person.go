// Package domain holds the Person aggregate and its bounded value types.
// NewUsername and NewName are the only production path for their types:
// a value that exists already satisfies its length bound.
package domain

import (
	"unicode/utf8"

	"github.com/peopleregistry/backend/internal/common/constants"
	commonerrors "github.com/peopleregistry/backend/internal/common/errors"
)

type Username struct {
	value string
}

// Bounds count characters, not bytes: accented names are the norm here.
func NewUsername(s string) (Username, error) {
	if utf8.RuneCountInString(s) > constants.UsernameMaxLength {
		return Username{}, commonerrors.ErrUsernameTooLong
	}
	return Username{value: s}, nil
}

func (u Username) String() string { return u.value }

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	if utf8.RuneCountInString(s) > constants.NameMaxLength {
		return Name{}, commonerrors.ErrNameTooLong
	}
	return Name{value: s}, nil
}

func (n Name) String() string { return n.value }

// Stack is a free-form skill tag. No bound is enforced here; strict decode
// mode applies one at the codec boundary.
type Stack string

type Person struct {
	// ID is assigned by the store; empty means not yet persisted.
	ID        string
	Username  Username
	Name      Name
	Birthdate string
	// Stack is order-preserving and may hold duplicates. A nil slice means
	// the stack was absent, which is distinct from an empty one.
	Stack []Stack
}

func (p Person) Persisted() bool { return p.ID != "" }

func (p Person) StackStrings() []string {
	if p.Stack == nil {
		return nil
	}
	tags := make([]string, len(p.Stack))
	for i, s := range p.Stack {
		tags[i] = string(s)
	}
	return tags
}
