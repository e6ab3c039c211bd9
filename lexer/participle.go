package lexer

import (
	"io"
	"io/ioutil"
	"sync"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/dmitryvk/jslex/token"
)

// This file adapts the pull-driven Lexer to participle's lexer.Definition
// and lexer.Lexer interfaces, so a downstream grammar can consume jslex
// tokens the same way it would consume any other participle lexer.
//
// token.Kind has ten members; participle.TokenType is just an int, so the
// mapping shifts each Kind up by one, alongside participle's own lexer.EOF
// sentinel.

// tokenType converts a token.Kind to the participle TokenType space used by
// this adapter. The numeric values are stable across a process but are not
// meant to be persisted.
func tokenType(k token.Kind) lexer.TokenType {
	return lexer.TokenType(int(k) + 1)
}

var (
	participleSymbols     map[string]lexer.TokenType
	participleSymbolsOnce sync.Once
)

// kindNames lists every token.Kind in declaration order, used to build the
// Symbols table participle needs for grammar tags like `@Word`.
var kindNames = []token.Kind{
	token.Whitespace,
	token.LineTerminator,
	token.LineComment,
	token.MultilineComment,
	token.Word,
	token.StringLiteral,
	token.NumberLiteral,
	token.RegexpLiteral,
	token.Punctuation,
	token.Unknown,
}

func buildSymbols() map[string]lexer.TokenType {
	m := make(map[string]lexer.TokenType, len(kindNames)+1)
	m["EOF"] = lexer.EOF
	for _, k := range kindNames {
		m[k.String()] = tokenType(k)
	}
	return m
}

// participleLexer wraps a Lexer so it satisfies participle's lexer.Lexer
// interface: a Next method returning one lexer.Token at a time, with an EOF
// sentinel token rather than an io.EOF-shaped error.
type participleLexer struct {
	filename string
	inner    *Lexer
	offset   int
}

// NewParticiple builds a participle-compatible lexer.Lexer over s.
func NewParticiple(filename, s string) lexer.Lexer {
	return &participleLexer{filename: filename, inner: NewFromString(s)}
}

// Next implements lexer.Lexer.
func (p *participleLexer) Next() (lexer.Token, error) {
	tok, ok := p.inner.Next()
	if !ok {
		return lexer.Token{
			Type: lexer.EOF,
			Pos:  lexer.Position{Filename: p.filename, Offset: p.offset},
		}, nil
	}
	pos := lexer.Position{Filename: p.filename, Offset: p.offset}
	p.offset += len(tok.Text())
	return lexer.Token{
		Type:  tokenType(tok.Kind),
		Value: tok.Text(),
		Pos:   pos,
	}, nil
}

// Definition implements participle's lexer.Definition interface, the entry
// point a parser.ParserOptions{lexer.Lexer(...)} expects.
type Definition struct{}

// Lex implements lexer.Definition.
func (Definition) Lex(filename string, r io.Reader) (lexer.Lexer, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewParticiple(filename, string(b)), nil
}

// LexString implements lexer.Definition.
func (Definition) LexString(filename string, input string) (lexer.Lexer, error) {
	return NewParticiple(filename, input), nil
}

// LexBytes implements lexer.Definition.
func (Definition) LexBytes(filename string, input []byte) (lexer.Lexer, error) {
	return NewParticiple(filename, string(input)), nil
}

// Symbols implements lexer.Definition, caching the result the same way
// across every Definition value since the mapping is fixed.
func (Definition) Symbols() map[string]lexer.TokenType {
	participleSymbolsOnce.Do(func() {
		participleSymbols = buildSymbols()
	})
	return participleSymbols
}
