package repository

import (
	"strings"
	"testing"

	"github.com/peopleregistry/backend/internal/person/domain"
)

func testPerson(t *testing.T, stack []domain.Stack) domain.Person {
	t.Helper()
	username, err := domain.NewUsername("zeh")
	if err != nil {
		t.Fatalf("failed to build username: %v", err)
	}
	name, err := domain.NewName("Jose")
	if err != nil {
		t.Fatalf("failed to build name: %v", err)
	}
	return domain.Person{
		Username:  username,
		Name:      name,
		Birthdate: "2000-01-01",
		Stack:     stack,
	}
}

func TestBuildSearchText(t *testing.T) {
	testCases := []struct {
		name  string
		stack []domain.Stack
		want  string
	}{
		{"no stack", nil, "zeh Jose"},
		{"empty stack", []domain.Stack{}, "zeh Jose"},
		{"single tag", []domain.Stack{"C#"}, "zeh Jose C#"},
		{"multiple tags", []domain.Stack{"C#", "Node", "Postgres"}, "zeh Jose C#,Node,Postgres"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := buildSearchText(testPerson(t, tc.stack)); got != tc.want {
				t.Errorf("buildSearchText() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestBuildSearchText_ContainsEverySearchableField(t *testing.T) {
	p := testPerson(t, []domain.Stack{"C#", "Node"})
	text := buildSearchText(p)

	needles := []string{p.Username.String(), p.Name.String(), "C#", "Node"}
	for _, needle := range needles {
		if !strings.Contains(text, needle) {
			t.Errorf("search text %q must contain %q", text, needle)
		}
	}
}
