// Package codes generates moderator verification codes.
package codes

import (
	"crypto/rand"
	"io"
	"math/big"
)

const (
	// Alphabet is the set of characters a code is drawn from
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// Length is the number of characters in a code
	Length = 8
)

var alphabetSize = big.NewInt(int64(len(Alphabet)))

// Generator draws codes from an entropy source
type Generator struct {
	Source io.Reader
}

// New returns a Generator backed by crypto/rand
func New() Generator {
	return Generator{Source: rand.Reader}
}

// Generate returns a code of Length characters, each picked uniformly from Alphabet.
// Codes are not checked for uniqueness.
func (g Generator) Generate() (string, error) {
	src := g.Source
	if src == nil {
		src = rand.Reader
	}
	b := make([]byte, Length)
	for i := range b {
		n, err := rand.Int(src, alphabetSize)
		if err != nil {
			return "", err
		}
		b[i] = Alphabet[n.Int64()]
	}
	return string(b), nil
}

// Valid reports whether code has the shape of a generated code
func Valid(code string) bool {
	if len(code) != Length {
		return false
	}
	for i := 0; i < len(code); i++ {
		c := code[i]
		if !(c >= 'A' && c <= 'Z') && !(c >= '0' && c <= '9') {
			return false
		}
	}
	return true
}
