package codes_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linesmerrill/moderator-codes/codes"
)

func TestGenerate(t *testing.T) {
	g := codes.New()
	for i := 0; i < 500; i++ {
		code, err := g.Generate()
		require.NoError(t, err)
		assert.Len(t, code, codes.Length)
		assert.True(t, codes.Valid(code), "code %q outside alphabet", code)
	}
}

func TestGenerateCoversAlphabet(t *testing.T) {
	g := codes.New()
	seen := map[rune]bool{}
	for i := 0; i < 2000; i++ {
		code, err := g.Generate()
		require.NoError(t, err)
		for _, c := range code {
			seen[c] = true
		}
	}
	assert.Len(t, seen, len(codes.Alphabet))
}

func TestGenerateDeterministicSource(t *testing.T) {
	seed := bytes.Repeat([]byte{7}, 64)

	first, err := codes.Generator{Source: bytes.NewReader(seed)}.Generate()
	require.NoError(t, err)
	second, err := codes.Generator{Source: bytes.NewReader(seed)}.Generate()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, codes.Valid(first))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestGenerateSourceError(t *testing.T) {
	code, err := codes.Generator{Source: failingReader{}}.Generate()
	assert.Empty(t, code)
	assert.EqualError(t, err, "entropy exhausted")
}

func TestValid(t *testing.T) {
	assert.True(t, codes.Valid("ABC12345"))
	assert.False(t, codes.Valid("abc12345"))
	assert.False(t, codes.Valid("ABC1234"))
	assert.False(t, codes.Valid("ABC123456"))
	assert.False(t, codes.Valid("ABC-2345"))
}
