package lexer

import "github.com/dmitryvk/jslex/token"

// The handlers below each greedily prefer the longest documented
// punctuator for their leading character, then leave the FSM in
// stateExpectExpr — every punctuator demands an expression next,
// except '++'/'--' which have a postfix exception (see lexPlus/
// lexMinus). lexSlash's comment cases leave the state alone and its
// regex case moves to stateAfterExpr; '.'/';' are handled separately
// by dispatch in lexer.go.

func (l *Lexer) lexBang() token.Token {
	a, _ := l.peekAt(1)
	b, _ := l.peekAt(2)
	switch {
	case a == '=' && b == '=':
		l.skip(3)
		l.state = stateExpectExpr
		return punct("!==")
	case a == '=':
		l.skip(2)
		l.state = stateExpectExpr
		return punct("!=")
	default:
		l.skip(1)
		l.state = stateExpectExpr
		return punct("!")
	}
}

func (l *Lexer) lexEquals() token.Token {
	a, _ := l.peekAt(1)
	b, _ := l.peekAt(2)
	switch {
	case a == '=' && b == '=':
		l.skip(3)
		l.state = stateExpectExpr
		return punct("===")
	case a == '=':
		l.skip(2)
		l.state = stateExpectExpr
		return punct("==")
	default:
		l.skip(1)
		l.state = stateExpectExpr
		return punct("=")
	}
}

func (l *Lexer) lexAmp() token.Token {
	a, _ := l.peekAt(1)
	switch a {
	case '&':
		l.skip(2)
		l.state = stateExpectExpr
		return punct("&&")
	case '=':
		l.skip(2)
		l.state = stateExpectExpr
		return punct("&=")
	default:
		l.skip(1)
		l.state = stateExpectExpr
		return punct("&")
	}
}

func (l *Lexer) lexStar() token.Token {
	a, _ := l.peekAt(1)
	if a == '=' {
		l.skip(2)
		l.state = stateExpectExpr
		return punct("*=")
	}
	l.skip(1)
	l.state = stateExpectExpr
	return punct("*")
}

func (l *Lexer) lexPlus() token.Token {
	a, _ := l.peekAt(1)
	switch a {
	case '=':
		l.skip(2)
		l.state = stateExpectExpr
		return punct("+=")
	case '+':
		l.skip(2)
		l.state = l.incDecState()
		return punct("++")
	default:
		l.skip(1)
		l.state = stateExpectExpr
		return punct("+")
	}
}

func (l *Lexer) lexMinus() token.Token {
	a, _ := l.peekAt(1)
	switch a {
	case '=':
		l.skip(2)
		l.state = stateExpectExpr
		return punct("-=")
	case '-':
		l.skip(2)
		l.state = l.incDecState()
		return punct("--")
	default:
		l.skip(1)
		l.state = stateExpectExpr
		return punct("-")
	}
}

// incDecState resolves whether a just-scanned '++'/'--' is postfix
// (the FSM was already after an expression, with no intervening line
// terminator) or prefix (every other case).
func (l *Lexer) incDecState() fsmState {
	if l.state == stateAfterExpr && !l.isNewLine {
		return stateAfterExpr
	}
	return stateExpectExpr
}

func (l *Lexer) lexLess() token.Token {
	a, _ := l.peekAt(1)
	b, _ := l.peekAt(2)
	switch {
	case a == '<' && b == '=':
		l.skip(3)
		l.state = stateExpectExpr
		return punct("<<=")
	case a == '<':
		l.skip(2)
		l.state = stateExpectExpr
		return punct("<<")
	case a == '=':
		l.skip(2)
		l.state = stateExpectExpr
		return punct("<=")
	default:
		l.skip(1)
		l.state = stateExpectExpr
		return punct("<")
	}
}

func (l *Lexer) lexGreater() token.Token {
	a, _ := l.peekAt(1)
	b, _ := l.peekAt(2)
	switch {
	case a == '>' && b == '=':
		l.skip(3)
		l.state = stateExpectExpr
		return punct(">>=")
	case a == '>':
		l.skip(2)
		l.state = stateExpectExpr
		return punct(">>")
	case a == '=':
		l.skip(2)
		l.state = stateExpectExpr
		return punct(">=")
	default:
		l.skip(1)
		l.state = stateExpectExpr
		return punct(">")
	}
}

func (l *Lexer) lexPipe() token.Token {
	a, _ := l.peekAt(1)
	switch a {
	case '=':
		l.skip(2)
		l.state = stateExpectExpr
		return punct("|=")
	case '|':
		l.skip(2)
		l.state = stateExpectExpr
		return punct("||")
	default:
		l.skip(1)
		l.state = stateExpectExpr
		return punct("|")
	}
}

func (l *Lexer) lexPercent() token.Token {
	a, _ := l.peekAt(1)
	if a == '=' {
		l.skip(2)
		l.state = stateExpectExpr
		return punct("%=")
	}
	l.skip(1)
	l.state = stateExpectExpr
	return punct("%")
}

func (l *Lexer) lexCaret() token.Token {
	a, _ := l.peekAt(1)
	if a == '=' {
		l.skip(2)
		l.state = stateExpectExpr
		return punct("^=")
	}
	l.skip(1)
	l.state = stateExpectExpr
	return punct("^")
}

// lexSlash is the one dispatch that needs more than a character class:
// whether '/' opens a comment, is division or '/=', or opens a regex
// body depends on the current expression-position state.
func (l *Lexer) lexSlash() token.Token {
	a, _ := l.peekAt(1)
	switch {
	case a == '/':
		return l.consumeLineComment()
	case a == '*':
		return l.consumeMultilineComment()
	case a == '=':
		l.skip(2)
		l.state = stateExpectExpr
		return punct("/=")
	case l.state == stateAfterExpr:
		l.skip(1)
		l.state = stateExpectExpr
		return punct("/")
	default:
		l.skip(1)
		tok := l.consumeRegexp()
		l.state = stateAfterExpr
		return tok
	}
}
