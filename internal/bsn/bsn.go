// Package bsn validates Dutch citizen service numbers (Burgerservicenummer).
//
// A BSN is exactly nine ASCII digits d1..d9 whose weighted sum
// 9*d1 + 8*d2 + ... + 2*d8 - d9 is divisible by 11. A Bsn value can only be
// built from a string that passes Validate, and every decoder re-validates.
package bsn

import (
	"errors"
	"fmt"
)

// Length is the number of digits in a BSN.
const Length = 9

var weights = [Length]int{9, 8, 7, 6, 5, 4, 3, 2, -1}

// ErrInvalid is matched by every validation failure.
var ErrInvalid = errors.New("invalid BSN")

// Reason classifies why a string is not a BSN.
type Reason int

const (
	ReasonLength Reason = iota + 1
	ReasonCharacter
	ReasonChecksum
)

func (r Reason) String() string {
	switch r {
	case ReasonLength:
		return "length"
	case ReasonCharacter:
		return "character"
	case ReasonChecksum:
		return "checksum"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// InvalidError describes a string that failed validation.
type InvalidError struct {
	Input  string
	Reason Reason
	detail string
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("invalid BSN %q: %s", e.Input, e.detail)
}

func (e *InvalidError) Is(target error) bool { return target == ErrInvalid }

// Bsn is a validated citizen service number.
type Bsn struct {
	value string
}

// Validate reports whether s is a well-formed BSN.
func Validate(s string) error {
	if len(s) != Length {
		return &InvalidError{Input: s, Reason: ReasonLength,
			detail: fmt.Sprintf("expected %d characters, got %d", Length, len(s))}
	}
	sum := 0
	for i := 0; i < Length; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return &InvalidError{Input: s, Reason: ReasonCharacter,
				detail: fmt.Sprintf("non-digit %q at position %d", c, i+1)}
		}
		sum += int(c-'0') * weights[i]
	}
	if sum%11 != 0 {
		return &InvalidError{Input: s, Reason: ReasonChecksum,
			detail: fmt.Sprintf("weighted sum %d is not divisible by 11", sum)}
	}
	return nil
}

// Check is Validate as a predicate.
func Check(s string) bool { return Validate(s) == nil }

// New validates s and wraps it.
func New(s string) (Bsn, error) {
	if err := Validate(s); err != nil {
		return Bsn{}, err
	}
	return Bsn{value: s}, nil
}

// MustNew is New for constants; it panics on an invalid input.
func MustNew(s string) Bsn {
	b, err := New(s)
	if err != nil {
		panic(err)
	}
	return b
}

// String returns the canonical nine-digit form.
func (b Bsn) String() string { return b.value }

// IsZero reports whether b is the zero value rather than a parsed BSN.
func (b Bsn) IsZero() bool { return b.value == "" }
