package lexer

import (
	"strings"

	"github.com/dmitryvk/jslex/token"
)

// numberState is the small internal state machine consumeNumber runs
// to recognize 0b/0o/0x literals alongside decimals with an optional
// fractional and exponent part. It shares no state with the outer FSM.
type numberState int

const (
	numInitial numberState = iota
	numInitialZero
	numBinary
	numOctal
	numDecimal
	numHex
)

// consumeNumber recognizes a decimal, 0b/0o/0x literal. No numeric
// separators, no BigInt suffix, no '+' in the exponent.
func (l *Lexer) consumeNumber() token.Token {
	var b strings.Builder
	state := numInitial

loop:
	for {
		c, ok := l.peek()
		if !ok {
			break
		}
		switch {
		case c == '0' && state == numInitial:
			b.WriteRune(c)
			l.read()
			state = numInitialZero
		case c >= '1' && c <= '9' && state == numInitial:
			b.WriteRune(c)
			l.read()
			state = numDecimal
		case state == numInitial:
			break loop
		case (c == 'b' || c == 'B') && state == numInitialZero:
			b.WriteRune(c)
			l.read()
			state = numBinary
		case (c == 'o' || c == 'O') && state == numInitialZero:
			b.WriteRune(c)
			l.read()
			state = numOctal
		case (c == 'x' || c == 'X') && state == numInitialZero:
			b.WriteRune(c)
			l.read()
			state = numHex
		case c >= '0' && c <= '1' && state == numBinary:
			b.WriteRune(c)
			l.read()
		case c >= '0' && c <= '7' && state == numOctal:
			b.WriteRune(c)
			l.read()
		case c >= '0' && c <= '9' && (state == numInitialZero || state == numDecimal):
			b.WriteRune(c)
			l.read()
		case isHexDigit(c) && state == numHex:
			b.WriteRune(c)
			l.read()
		default:
			break loop
		}
	}

	if state == numDecimal {
		if c, ok := l.peek(); ok && c == '.' {
			b.WriteRune('.')
			l.skip(1)
			for {
				c, ok := l.peek()
				if !ok || c < '0' || c > '9' {
					break
				}
				b.WriteRune(c)
				l.skip(1)
			}
		}

		if c, ok := l.peek(); ok && (c == 'e' || c == 'E') {
			b.WriteRune(c)
			l.skip(1)

			if c, ok := l.peek(); ok && c == '-' {
				b.WriteRune('-')
				l.skip(1)
			}

			for {
				c, ok := l.peek()
				if !ok || c < '0' || c > '9' {
					break
				}
				b.WriteRune(c)
				l.skip(1)
			}
		}
	}

	return token.Token{Kind: token.NumberLiteral, Value: b.String()}
}

func (l *Lexer) skip(n int) { l.src.Skip(n) }

func isHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// consumeWhitespace greedily consumes a run of space/tab/VT/FF/NBSP.
func (l *Lexer) consumeWhitespace() token.Token {
	var b strings.Builder
	for {
		c, ok := l.peek()
		if !ok || !isSpaceChar(c) {
			break
		}
		b.WriteRune(c)
		l.read()
	}
	return token.Token{Kind: token.Whitespace, Value: b.String()}
}

// consumeLineTerminator greedily consumes a run of CR and LF, possibly
// mixed.
func (l *Lexer) consumeLineTerminator() token.Token {
	var b strings.Builder
	for {
		c, ok := l.peek()
		if !ok || (c != '\r' && c != '\n') {
			break
		}
		b.WriteRune(c)
		l.read()
	}
	return token.Token{Kind: token.LineTerminator, Value: b.String()}
}

// consumeWord greedily consumes a run of '_', '$' or alphanumeric
// characters. No keyword classification happens here; the caller
// inspects the lexeme afterward.
func (l *Lexer) consumeWord() token.Token {
	var b strings.Builder
	for {
		c, ok := l.peek()
		if !ok {
			break
		}
		if c == '_' || c == '$' || isAlphanumeric(c) {
			b.WriteRune(c)
			l.read()
		} else {
			break
		}
	}
	return token.Token{Kind: token.Word, Value: b.String()}
}

func isAlphanumeric(c rune) bool {
	return isAlphabetic(c) || (c >= '0' && c <= '9')
}

// stringInner mirrors the reference lexer's inner state for strings:
// Plain reads any character verbatim (switching to Backslash on a
// bare '\'); Backslash always re-enters Plain after consuming
// whatever follows the escape, be it a bare character, a \xNN pair, or
// a \uXXXX / \u{...} sequence.
type stringInner int

const (
	stringInnerPlain stringInner = iota
	stringInnerBackslash
)

// consumeString records the opening quote, then copies characters
// verbatim (including every escape character) until the matching
// closing quote, or end of input. Malformed escapes and non-hex digits
// inside \xNN are preserved rather than rejected: this layer does not
// validate string contents.
func (l *Lexer) consumeString() token.Token {
	var b strings.Builder

	quote, _ := l.read()
	b.WriteRune(quote)

	state := stringInnerPlain

	for {
		c, ok := l.peek()
		if !ok {
			break
		}
		switch {
		case c == quote && state == stringInnerPlain:
			l.read()
			b.WriteRune(c)
			return token.Token{Kind: token.StringLiteral, Value: b.String()}

		case c == 'x' && state == stringInnerBackslash:
			l.read()
			b.WriteRune(c)
			for i := 0; i < 2; i++ {
				if d, ok := l.read(); ok {
					b.WriteRune(d)
				}
			}
			state = stringInnerPlain

		case c == 'u' && state == stringInnerBackslash:
			l.read()
			b.WriteRune(c)
			if next, ok := l.peek(); ok && next == '{' {
				open, _ := l.read()
				b.WriteRune(open)
				for {
					d, ok := l.read()
					if !ok {
						break
					}
					b.WriteRune(d)
					if d == '}' {
						break
					}
				}
			} else {
				for i := 0; i < 4; i++ {
					if d, ok := l.read(); ok {
						b.WriteRune(d)
					}
				}
			}
			state = stringInnerPlain

		case c == '\\' && state == stringInnerPlain:
			l.read()
			b.WriteRune(c)
			state = stringInnerBackslash

		default:
			l.read()
			b.WriteRune(c)
			state = stringInnerPlain
		}
	}

	return token.Token{Kind: token.StringLiteral, Value: b.String()}
}

// consumeLineComment consumes the leading "//" (discarded, not part of
// the payload) then copies text up to but not including the next CR/LF.
func (l *Lexer) consumeLineComment() token.Token {
	l.skip(2) // "//"
	var b strings.Builder
	for {
		c, ok := l.peek()
		if !ok || c == '\n' || c == '\r' {
			break
		}
		b.WriteRune(c)
		l.read()
	}
	return token.Token{Kind: token.LineComment, Value: b.String()}
}

// consumeMultilineComment consumes the leading "/*" (discarded) then
// copies text until "*/" is seen, which is consumed but not stored.
// An unterminated comment consumes to end of input.
func (l *Lexer) consumeMultilineComment() token.Token {
	l.skip(2) // "/*"
	var b strings.Builder
	terminated := false
	for {
		c, ok := l.peek()
		if !ok {
			break
		}
		if c == '*' {
			if next, ok := l.peekAt(1); ok && next == '/' {
				l.skip(2)
				terminated = true
				break
			}
		}
		b.WriteRune(c)
		l.read()
	}
	return token.Token{Kind: token.MultilineComment, Value: b.String(), Terminated: terminated}
}

// consumeRegexp is entered after the leading '/' has already been
// consumed by the slash disambiguation dispatch. It reads the body up
// to an unescaped '/' (a '\' escapes the following character, both
// preserved verbatim), then a trailing run of lowercase-letter flags.
func (l *Lexer) consumeRegexp() token.Token {
	var body strings.Builder
	var flags strings.Builder
	foundEnd := false

	for {
		c, ok := l.peek()
		if !ok {
			break
		}
		if c == '\\' {
			if next, ok := l.peekAt(1); ok {
				l.skip(2)
				body.WriteRune('\\')
				body.WriteRune(next)
				continue
			}
			l.skip(1)
			body.WriteRune(c)
			continue
		}
		if c == '/' {
			foundEnd = true
			l.skip(1)
			break
		}
		body.WriteRune(c)
		l.skip(1)
	}

	if foundEnd {
		for {
			c, ok := l.peek()
			if !ok || c < 'a' || c > 'z' {
				break
			}
			flags.WriteRune(c)
			l.skip(1)
		}
	}

	return token.Token{Kind: token.RegexpLiteral, Value: body.String(), Flags: flags.String(), Terminated: foundEnd}
}
