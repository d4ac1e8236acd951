package valueobject

import (
	"regexp"
	"strings"
	"unicode"
)

// UK mobile/landline: +44 or 0 prefix followed by ten digits.
var ukPhonePattern = regexp.MustCompile(`^((\+44)|0)\d{4}\d{6}$`)

// PhoneNumber is a validated UK phone number. The stored value is the
// whitespace-stripped form of the raw input.
type PhoneNumber struct {
	value string
}

func NewPhoneNumber(raw string) (PhoneNumber, error) {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
	v, err := parseString("phone_number", stripped, ukPhonePattern, "must be a UK phone number")
	if err != nil {
		return PhoneNumber{}, err
	}
	return PhoneNumber{value: v}, nil
}

func (p PhoneNumber) String() string               { return p.value }
func (p PhoneNumber) IsZero() bool                 { return p.value == "" }
func (p PhoneNumber) Equals(other PhoneNumber) bool { return p.value == other.value }
