package booking

import (
	"crypto/rand"
	"errors"
	"strings"
)

const (
	// ReferenceLength is the size of the user-facing booking code.
	ReferenceLength = 6

	referenceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var ErrInvalidReference = errors.New("invalid booking reference")

// Reference is the short public identifier printed on confirmations,
// distinct from the internal booking id. Uniqueness is enforced by the
// store; callers regenerate on collision.
type Reference string

func NewReference() (Reference, error) {
	buf := make([]byte, ReferenceLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = referenceAlphabet[int(b)%len(referenceAlphabet)]
	}
	return Reference(buf), nil
}

func ParseReference(s string) (Reference, error) {
	if len(s) != ReferenceLength {
		return "", ErrInvalidReference
	}
	for _, r := range s {
		if !strings.ContainsRune(referenceAlphabet, r) {
			return "", ErrInvalidReference
		}
	}
	return Reference(s), nil
}

func (r Reference) String() string {
	return string(r)
}
