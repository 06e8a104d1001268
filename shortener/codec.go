package shortener

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrBadAlphabet indicates an alphabet shorter than 2 runes or with repeats.
	ErrBadAlphabet = errors.New("shortener: invalid alphabet")
	// ErrBadCode indicates a code that no key encodes to.
	ErrBadCode = errors.New("shortener: invalid code")
)

// DefaultAlphabet holds 85 characters that may appear in a URL unescaped
// or as reserved delimiters.
const DefaultAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789" +
	"-_.~!*'();:@&=+$,/?#[]%"

// Codec converts integer keys to and from base-N strings, N being the
// alphabet length. The first rune is the zero digit.
type Codec struct {
	digits []rune
	index  map[rune]uint64
}

// NewCodec builds a codec over alphabet.
func NewCodec(alphabet string) (*Codec, error) {
	digits := []rune(alphabet)
	if len(digits) < 2 {
		return nil, fmt.Errorf("%d runes, need at least 2: %w", len(digits), ErrBadAlphabet)
	}
	index := make(map[rune]uint64, len(digits))
	for i, r := range digits {
		if _, dup := index[r]; dup {
			return nil, fmt.Errorf("rune %q repeated: %w", r, ErrBadAlphabet)
		}
		index[r] = uint64(i)
	}

	return &Codec{digits: digits, index: index}, nil
}

// Base returns the number of digits in the alphabet.
func (c *Codec) Base() int {
	return len(c.digits)
}

// EncodeKey renders key most-significant digit first. Key 0 is the zero digit.
func (c *Codec) EncodeKey(key uint64) string {
	if key == 0 {
		return string(c.digits[0])
	}
	base := uint64(len(c.digits))
	var buf []rune
	for key > 0 {
		buf = append(buf, c.digits[key%base])
		key /= base
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf)
}

// DecodeKey is the inverse of EncodeKey. Only canonical codes are accepted:
// a leading zero digit is allowed only in the single-digit code for key 0.
func (c *Codec) DecodeKey(code string) (uint64, error) {
	digits := []rune(code)
	if len(digits) == 0 {
		return 0, fmt.Errorf("empty code: %w", ErrBadCode)
	}
	if len(digits) > 1 && digits[0] == c.digits[0] {
		return 0, fmt.Errorf("code %q has a leading zero digit: %w", code, ErrBadCode)
	}
	base := uint64(len(c.digits))
	var key uint64
	for _, r := range digits {
		d, ok := c.index[r]
		if !ok {
			return 0, fmt.Errorf("code %q: rune %q not in alphabet: %w", code, r, ErrBadCode)
		}
		if key > (math.MaxUint64-d)/base {
			return 0, fmt.Errorf("code %q overflows uint64: %w", code, ErrBadCode)
		}
		key = key*base + d
	}

	return key, nil
}
