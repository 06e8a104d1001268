package shortener

import (
	"errors"
	"fmt"
)

// ErrEmptyURL indicates Encode was called with an empty URL.
var ErrEmptyURL = errors.New("shortener: empty url")

// Option configures a Shortener.
type Option func(*Shortener)

// WithCodec replaces the default codec. Panics on nil.
func WithCodec(c *Codec) Option {
	if c == nil {
		panic("shortener: WithCodec(nil)")
	}
	return func(s *Shortener) {
		s.codec = c
	}
}

// Shortener encodes URLs into short codes backed by a Store.
type Shortener struct {
	store Store
	codec *Codec
}

// New returns a Shortener over store using DefaultAlphabet unless
// WithCodec says otherwise. Panics on a nil store.
func New(store Store, opts ...Option) *Shortener {
	if store == nil {
		panic("shortener: New(nil store)")
	}
	s := &Shortener{store: store, codec: defaultCodec()}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func defaultCodec() *Codec {
	c, err := NewCodec(DefaultAlphabet)
	if err != nil {
		panic(err) // DefaultAlphabet is a valid constant
	}

	return c
}

// Encode stores url and returns its code. Each call stores a new entry, so
// encoding the same URL twice yields two codes.
func (s *Shortener) Encode(url string) (string, error) {
	if url == "" {
		return "", ErrEmptyURL
	}
	key, err := s.store.Put(url)
	if err != nil {
		return "", fmt.Errorf("shortener: store %q: %w", url, err)
	}

	return s.codec.EncodeKey(key), nil
}

// Decode returns the URL behind code. found is false for codes that are
// malformed or were never issued by this Shortener's store.
func (s *Shortener) Decode(code string) (url string, found bool) {
	key, err := s.codec.DecodeKey(code)
	if err != nil {
		return "", false
	}

	return s.store.Get(key)
}
