package taxrate

import "encoding/json"

// Bound is the upper edge of a rate band: either a finite dollar amount or
// unbounded for the top band. It replaces a floating-point infinity sentinel
// so that "no upper limit" is an explicit tagged state instead of a value
// compared by identity.
type Bound struct {
	amount   float64
	infinite bool
}

// UpTo returns a finite bound at the given dollar amount.
func UpTo(amount float64) Bound {
	return Bound{amount: amount}
}

// NoLimit returns the unbounded upper edge.
func NoLimit() Bound {
	return Bound{infinite: true}
}

// Infinite reports whether the bound is unbounded.
func (b Bound) Infinite() bool { return b.infinite }

// Amount returns the dollar amount of a finite bound. It is zero for an
// unbounded Bound; callers check Infinite first.
func (b Bound) Amount() float64 { return b.amount }

// MarshalJSON renders a finite bound as a plain number and an unbounded one
// as the literal string "Infinity", since JSON has no infinity token.
func (b Bound) MarshalJSON() ([]byte, error) {
	if b.infinite {
		return []byte(`"Infinity"`), nil
	}
	return json.Marshal(b.amount)
}
