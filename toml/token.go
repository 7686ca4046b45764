// Package toml reads and writes the subset of TOML used by housegen config
// files: tables, arrays of tables, inline tables, arrays, basic and literal
// strings, integers, floats and booleans. Dates and multi-line strings are
// not supported.
package toml

import "fmt"

// Kind is the lexical class of a token
type Kind uint8

const (
	KindError Kind = iota
	KindEOF
	KindNewline
	KindKey    // bare key
	KindString // basic or literal string, unescaped
	KindInt
	KindFloat
	KindBool
	KindEqual
	KindDot
	KindComma
	KindLBracket
	KindRBracket
	KindLBrace
	KindRBrace
)

var kindNames = [...]string{
	KindError:    "error",
	KindEOF:      "end of input",
	KindNewline:  "newline",
	KindKey:      "key",
	KindString:   "string",
	KindInt:      "integer",
	KindFloat:    "float",
	KindBool:     "bool",
	KindEqual:    "'='",
	KindDot:      "'.'",
	KindComma:    "','",
	KindLBracket: "'['",
	KindRBracket: "']'",
	KindLBrace:   "'{'",
	KindRBrace:   "'}'",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Pos is a 1-based source position
type Pos struct {
	Line, Col int
}

// Token is one lexeme; Text holds the unescaped value for strings
type Token struct {
	Kind Kind
	Text string
	Pos  Pos
}

func (t Token) String() string {
	switch t.Kind {
	case KindEOF, KindNewline:
		return t.Kind.String()
	case KindError:
		return "error: " + t.Text
	}
	txt := t.Text
	if len(txt) > 24 {
		txt = txt[:24] + "..."
	}
	return fmt.Sprintf("%s %q", t.Kind, txt)
}

// ParseError reports malformed input with its position
type ParseError struct {
	Pos Pos
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("toml: line %d col %d: %s", e.Pos.Line, e.Pos.Col, e.Msg)
}
