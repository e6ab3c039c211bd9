// Package charstream provides the lexer's lookahead buffer: a thin
// adapter over a pull-based rune source that gives the tokenizer
// unbounded-offset lookahead and committed consumption.
package charstream

import "unicode/utf8"

// Source is a pull-driven code-point iterator. Next returns the next
// rune and true, or (0, false) once the source is exhausted. It is the
// Go analogue of the Iterator<Item=char> the reference lexer is built
// on: callers drive it one rune at a time, there is no push-based
// callback and no internal buffering on the source's part.
type Source interface {
	Next() (rune, bool)
}

// stringSource walks a string's runes in order.
type stringSource struct {
	rest string
}

// NewStringSource adapts a string into a Source, used by NewFromString
// to tokenize directly from in-memory text.
func NewStringSource(s string) Source {
	return &stringSource{rest: s}
}

func (s *stringSource) Next() (rune, bool) {
	if len(s.rest) == 0 {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(s.rest)
	s.rest = s.rest[size:]
	return r, true
}

// Buffer wraps a Source with an ordered lookahead FIFO of already-peeked
// runes. Reads and lookaheads observe runes in source order; once a rune
// is consumed by Read it never reappears.
type Buffer struct {
	source       Source
	lookaheadBuf []rune
}

// New wraps the given Source in a Buffer.
func New(source Source) *Buffer {
	return &Buffer{source: source}
}

// NewFromString is a convenience constructor for tokenizing a string
// directly, without the caller needing to build a Source.
func NewFromString(s string) *Buffer {
	return New(NewStringSource(s))
}

// Read consumes and returns the next rune, or (0, false) at end of
// input. It prefers the lookahead buffer's front; only once that is
// empty does it pull from the underlying source.
func (b *Buffer) Read() (rune, bool) {
	if len(b.lookaheadBuf) > 0 {
		r := b.lookaheadBuf[0]
		b.lookaheadBuf = b.lookaheadBuf[1:]
		return r, true
	}
	return b.source.Next()
}

// Lookahead returns the rune at offset k (0 = next) without consuming
// it, growing the lookahead buffer from the source as needed. It
// signals end of input if the source is exhausted before offset k.
func (b *Buffer) Lookahead(k int) (rune, bool) {
	for len(b.lookaheadBuf) < k+1 {
		r, ok := b.source.Next()
		if !ok {
			return 0, false
		}
		b.lookaheadBuf = append(b.lookaheadBuf, r)
	}
	return b.lookaheadBuf[k], true
}

// Skip discards the next n runes; equivalent to n calls to Read.
func (b *Buffer) Skip(n int) {
	for i := 0; i < n; i++ {
		b.Read()
	}
}
