package valueobject

import (
	"regexp"

	"github.com/avenlyn/commerce-backend/internal/domain"
)

var personNamePattern = regexp.MustCompile(`^[a-zA-Z ,.'-]+$`)

const personNameMsg = "must be at least 2 letters and contain only letters, spaces, commas, periods, apostrophes or hyphens"

func parsePersonName(field, raw string) (string, error) {
	v, err := parseString(field, raw, personNamePattern, personNameMsg)
	if err != nil {
		return "", err
	}
	if len(v) < 2 {
		return "", domain.Validation(field, personNameMsg)
	}
	return v, nil
}

// FirstName is a customer's validated given name.
type FirstName struct {
	value string
}

func NewFirstName(raw string) (FirstName, error) {
	v, err := parsePersonName("first_name", raw)
	if err != nil {
		return FirstName{}, err
	}
	return FirstName{value: v}, nil
}

func (n FirstName) String() string             { return n.value }
func (n FirstName) IsZero() bool               { return n.value == "" }
func (n FirstName) Equals(other FirstName) bool { return n.value == other.value }

// LastName is a customer's validated family name.
type LastName struct {
	value string
}

func NewLastName(raw string) (LastName, error) {
	v, err := parsePersonName("last_name", raw)
	if err != nil {
		return LastName{}, err
	}
	return LastName{value: v}, nil
}

func (n LastName) String() string            { return n.value }
func (n LastName) IsZero() bool              { return n.value == "" }
func (n LastName) Equals(other LastName) bool { return n.value == other.value }
