package random

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// Alphabet is the 62-symbol set short codes are drawn from.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789"

// Generator produces random alphanumeric strings from an injected entropy
// source. Pass crypto/rand.Reader in production; tests may pass a
// deterministic reader.
type Generator struct {
	source io.Reader
}

// New creates a Generator backed by the given entropy source.
// A nil source falls back to crypto/rand.Reader.
func New(source io.Reader) *Generator {
	if source == nil {
		source = rand.Reader
	}
	return &Generator{source: source}
}

// NewString generates a random string of the given size, each symbol drawn
// uniformly and independently from Alphabet. It does not check uniqueness
// against anything; that is the storage layer's job.
func (g *Generator) NewString(size int) (string, error) {
	alphabetLen := big.NewInt(int64(len(Alphabet)))

	b := make([]byte, size)
	for i := range b {
		num, err := rand.Int(g.source, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to read random source: %w", err)
		}
		b[i] = Alphabet[num.Int64()]
	}

	return string(b), nil
}
