// Package codegen produces random order codes.
package codegen

import (
	"crypto/rand"
	"math/big"

	"logistics/internal/pkg/errs"
)

const (
	alphabet  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	maxLength = 32
)

// Generator draws uppercase alphanumeric codes from crypto/rand.
type Generator struct{}

func New() Generator {
	return Generator{}
}

func (Generator) Generate(length int) (string, error) {
	if length < 1 || length > maxLength {
		return "", errs.NewValueIsOutOfRangeError("code length", length, 1, maxLength)
	}

	limit := big.NewInt(int64(len(alphabet)))
	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		code[i] = alphabet[n.Int64()]
	}
	return string(code), nil
}
