package toml

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

var punct = map[byte]Kind{
	'\n': KindNewline, '=': KindEqual, '.': KindDot, ',': KindComma,
	'[': KindLBracket, ']': KindRBracket, '{': KindLBrace, '}': KindRBrace,
}

// lexer splits input into tokens; comments and blank space are dropped
type lexer struct {
	src  []byte
	pos  int
	line int
	col  int
}

func newLexer(src []byte) *lexer {
	return &lexer{src: src, line: 1, col: 1}
}

func (l *lexer) next() Token {
	l.skipSpace()
	start := Pos{l.line, l.col}
	if l.pos >= len(l.src) {
		return Token{Kind: KindEOF, Pos: start}
	}

	ch := l.src[l.pos]
	if ch == '#' {
		for l.pos < len(l.src) && l.src[l.pos] != '\n' {
			l.advance()
		}
		return l.next()
	}

	if k, ok := punct[ch]; ok {
		l.advance()
		return Token{Kind: k, Text: string(ch), Pos: start}
	}

	switch {
	case ch == '"':
		return l.basicString(start)
	case ch == '\'':
		return l.literalString(start)
	case isBareByte(ch) || ch == '+':
		return l.bare(start)
	}
	l.advance()
	return Token{Kind: KindError, Text: "unexpected character " + strconv.QuoteRune(rune(ch)), Pos: start}
}

func (l *lexer) advance() {
	if l.pos >= len(l.src) {
		return
	}
	if l.src[l.pos] == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	_, w := utf8.DecodeRune(l.src[l.pos:])
	l.pos += w
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case ' ', '\t', '\r':
			l.advance()
		default:
			return
		}
	}
}

func (l *lexer) basicString(start Pos) Token {
	l.advance()
	var sb strings.Builder
	for l.pos < len(l.src) {
		ch := l.src[l.pos]
		switch ch {
		case '\n':
			return Token{Kind: KindError, Text: "newline in string", Pos: start}
		case '"':
			l.advance()
			return Token{Kind: KindString, Text: sb.String(), Pos: start}
		case '\\':
			l.advance()
			r, ok := l.escape()
			if !ok {
				return Token{Kind: KindError, Text: "bad escape sequence", Pos: Pos{l.line, l.col}}
			}
			sb.WriteRune(r)
		default:
			r, _ := utf8.DecodeRune(l.src[l.pos:])
			sb.WriteRune(r)
			l.advance()
		}
	}
	return Token{Kind: KindError, Text: "unterminated string", Pos: start}
}

func (l *lexer) escape() (rune, bool) {
	if l.pos >= len(l.src) {
		return 0, false
	}
	ch := l.src[l.pos]
	l.advance()
	switch ch {
	case 'b':
		return '\b', true
	case 't':
		return '\t', true
	case 'n':
		return '\n', true
	case 'f':
		return '\f', true
	case 'r':
		return '\r', true
	case '"':
		return '"', true
	case '\\':
		return '\\', true
	case 'u', 'U':
		n := 4
		if ch == 'U' {
			n = 8
		}
		if l.pos+n > len(l.src) {
			return 0, false
		}
		v, err := strconv.ParseUint(string(l.src[l.pos:l.pos+n]), 16, 32)
		if err != nil || !utf8.ValidRune(rune(v)) {
			return 0, false
		}
		for range n {
			l.advance()
		}
		return rune(v), true
	}
	return 0, false
}

func (l *lexer) literalString(start Pos) Token {
	l.advance()
	from := l.pos
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case '\n':
			return Token{Kind: KindError, Text: "newline in string", Pos: start}
		case '\'':
			text := string(l.src[from:l.pos])
			l.advance()
			return Token{Kind: KindString, Text: text, Pos: start}
		}
		l.advance()
	}
	return Token{Kind: KindError, Text: "unterminated string", Pos: start}
}

// bare reads a bare key or a number. A '.' only continues a token that
// started numerically, so dotted keys still split.
func (l *lexer) bare(start Pos) Token {
	from := l.pos
	first := l.src[l.pos]
	numeric := isDigit(first) || first == '+' || first == '-'
	for l.pos < len(l.src) {
		ch := l.src[l.pos]
		if isBareByte(ch) || ch == '+' || (ch == '.' && numeric) {
			l.advance()
			continue
		}
		break
	}
	text := string(l.src[from:l.pos])
	return Token{Kind: classify(text), Text: text, Pos: start}
}

// classify decides between bool, int, float and bare key
func classify(text string) Kind {
	switch text {
	case "true", "false":
		return KindBool
	case "inf", "+inf", "-inf", "nan", "+nan", "-nan":
		return KindFloat
	}
	if _, err := parseInt(text); err == nil {
		return KindInt
	}
	if _, err := parseFloat(text); err == nil {
		return KindFloat
	}
	if strings.ContainsAny(text, ".+") {
		return KindError
	}
	return KindKey
}

func parseInt(text string) (int64, error) {
	s := strings.ReplaceAll(text, "_", "")
	digits := strings.TrimLeft(s, "+-")
	// leading zeros are not allowed in decimal integers
	if len(digits) > 1 && digits[0] == '0' && isDigit(digits[1]) {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseInt(s, 0, 64)
}

func parseFloat(text string) (float64, error) {
	s := strings.ReplaceAll(text, "_", "")
	switch strings.TrimLeft(s, "+-") {
	case "inf", "nan":
		return strconv.ParseFloat(s, 64)
	}
	if !strings.ContainsAny(s, ".eE") || strings.ContainsAny(s, "xXoObB") {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseFloat(s, 64)
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isBareByte(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || isDigit(ch) || ch == '_' || ch == '-'
}
