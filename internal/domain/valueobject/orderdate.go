package valueobject

import "time"

// OrderDate is a concrete instant attached to an order. It carries no rule
// beyond being a real timestamp; the value is normalized to UTC.
type OrderDate struct {
	value time.Time
}

func NewOrderDate(raw time.Time) OrderDate {
	return OrderDate{value: raw.UTC()}
}

func (d OrderDate) Time() time.Time             { return d.value }
func (d OrderDate) IsZero() bool                { return d.value.IsZero() }
func (d OrderDate) Equals(other OrderDate) bool { return d.value.Equal(other.value) }
