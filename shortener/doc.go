// Package shortener turns URLs into short codes and back.
//
// A Shortener stores each URL under the next integer key of a caller-owned
// Store and renders that key in base-N over a URL-safe alphabet. There is no
// package-level state: every Shortener works on the Store it was given, so
// independent instances never observe each other and tests start from a
// fresh or Reset store.
//
// What:
//
//   - Store / MemoryStore: key → URL storage with monotonically increasing
//     keys starting at 0, guarded by a sync.RWMutex.
//   - Codec: base-N key codec; DefaultAlphabet has 85 characters.
//   - Shortener: Encode(url) → code, Decode(code) → (url, found).
//
// Decode never fails loudly: unknown, malformed or foreign codes report
// found == false.
//
// Errors:
//
//   - ErrEmptyURL      Encode of "".
//   - ErrBadAlphabet   NewCodec alphabet too short or with repeated runes.
//   - ErrBadCode       DecodeKey of an empty, foreign, non-canonical or
//     overflowing code.
package shortener
