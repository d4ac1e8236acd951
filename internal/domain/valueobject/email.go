package valueobject

import "regexp"

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email is a validated email address.
type Email struct {
	value string
}

func NewEmail(raw string) (Email, error) {
	v, err := parseString("email", raw, emailPattern, "must be a valid email address")
	if err != nil {
		return Email{}, err
	}
	return Email{value: v}, nil
}

func (e Email) String() string         { return e.value }
func (e Email) IsZero() bool           { return e.value == "" }
func (e Email) Equals(other Email) bool { return e.value == other.value }
