package toml

import (
	"fmt"
	"reflect"
	"strings"
)

// Parse reads TOML into generic values: map[string]any for tables,
// []map[string]any for arrays of tables, []any for arrays, and string, int64,
// float64 or bool for scalars.
func Parse(src []byte) (map[string]any, error) {
	p := &parser{
		lx:       newLexer(src),
		root:     make(map[string]any),
		declared: make(map[uintptr]bool),
	}
	p.cur = p.root
	p.advance()
	if err := p.document(); err != nil {
		return nil, err
	}
	return p.root, nil
}

type parser struct {
	lx   *lexer
	tok  Token
	root map[string]any
	cur  map[string]any

	// tables opened by an explicit [header]
	declared map[uintptr]bool
}

func (p *parser) advance() {
	p.tok = p.lx.next()
}

func (p *parser) errf(pos Pos, format string, args ...any) error {
	return &ParseError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) expect(k Kind) error {
	if p.tok.Kind != k {
		return p.unexpected("expected " + k.String())
	}
	p.advance()
	return nil
}

func (p *parser) unexpected(want string) error {
	if p.tok.Kind == KindError {
		return p.errf(p.tok.Pos, "%s", p.tok.Text)
	}
	return p.errf(p.tok.Pos, "%s, got %s", want, p.tok)
}

func (p *parser) document() error {
	for {
		switch p.tok.Kind {
		case KindEOF:
			return nil
		case KindNewline:
			p.advance()
			continue
		case KindLBracket:
			if err := p.header(); err != nil {
				return err
			}
		default:
			if err := p.keyValue(p.cur); err != nil {
				return err
			}
		}
		if p.tok.Kind != KindNewline && p.tok.Kind != KindEOF {
			return p.unexpected("expected end of line")
		}
	}
}

// header handles [a.b] and [[a.b]]
func (p *parser) header() error {
	pos := p.tok.Pos
	p.advance()
	array := false
	if p.tok.Kind == KindLBracket {
		array = true
		p.advance()
	}
	path, err := p.key()
	if err != nil {
		return err
	}
	if err := p.expect(KindRBracket); err != nil {
		return err
	}
	if array {
		if err := p.expect(KindRBracket); err != nil {
			return err
		}
	}

	parent, err := p.walk(p.root, path[:len(path)-1], pos)
	if err != nil {
		return err
	}
	last := path[len(path)-1]
	name := strings.Join(path, ".")

	if array {
		var list []map[string]any
		switch v := parent[last].(type) {
		case nil:
		case []map[string]any:
			list = v
		default:
			return p.errf(pos, "key %s is not an array of tables", name)
		}
		t := make(map[string]any)
		parent[last] = append(list, t)
		p.cur = t
		return nil
	}

	switch v := parent[last].(type) {
	case nil:
		t := make(map[string]any)
		parent[last] = t
		p.cur = t
	case map[string]any:
		p.cur = v
	default:
		return p.errf(pos, "key %s is not a table", name)
	}
	id := reflect.ValueOf(p.cur).Pointer()
	if p.declared[id] {
		return p.errf(pos, "table %s defined twice", name)
	}
	p.declared[id] = true
	return nil
}

// walk descends through intermediate keys, creating tables and entering the
// last element of arrays of tables
func (p *parser) walk(t map[string]any, keys []string, pos Pos) (map[string]any, error) {
	for _, k := range keys {
		switch v := t[k].(type) {
		case nil:
			n := make(map[string]any)
			t[k] = n
			t = n
		case map[string]any:
			t = v
		case []map[string]any:
			if len(v) == 0 {
				return nil, p.errf(pos, "empty array of tables %s", k)
			}
			t = v[len(v)-1]
		default:
			return nil, p.errf(pos, "key %s is not a table", k)
		}
	}
	return t, nil
}

func (p *parser) keyValue(t map[string]any) error {
	pos := p.tok.Pos
	path, err := p.key()
	if err != nil {
		return err
	}
	if err := p.expect(KindEqual); err != nil {
		return err
	}
	val, err := p.value()
	if err != nil {
		return err
	}
	parent, err := p.walk(t, path[:len(path)-1], pos)
	if err != nil {
		return err
	}
	last := path[len(path)-1]
	if _, dup := parent[last]; dup {
		return p.errf(pos, "duplicate key %s", strings.Join(path, "."))
	}
	parent[last] = val
	return nil
}

// key reads a possibly dotted key; integer and bool lexemes are valid bare keys
func (p *parser) key() ([]string, error) {
	var path []string
	for {
		switch p.tok.Kind {
		case KindKey, KindString, KindInt, KindBool:
			path = append(path, p.tok.Text)
			p.advance()
		default:
			return nil, p.unexpected("expected key")
		}
		if p.tok.Kind != KindDot {
			return path, nil
		}
		p.advance()
	}
}

func (p *parser) value() (any, error) {
	tok := p.tok
	switch tok.Kind {
	case KindString:
		p.advance()
		return tok.Text, nil
	case KindBool:
		p.advance()
		return tok.Text == "true", nil
	case KindInt:
		n, err := parseInt(tok.Text)
		if err != nil {
			return nil, p.errf(tok.Pos, "bad integer %q", tok.Text)
		}
		p.advance()
		return n, nil
	case KindFloat:
		f, err := parseFloat(tok.Text)
		if err != nil {
			return nil, p.errf(tok.Pos, "bad float %q", tok.Text)
		}
		p.advance()
		return f, nil
	case KindLBracket:
		return p.array()
	case KindLBrace:
		return p.inlineTable()
	}
	return nil, p.unexpected("expected value")
}

func (p *parser) skipNewlines() {
	for p.tok.Kind == KindNewline {
		p.advance()
	}
}

func (p *parser) array() ([]any, error) {
	p.advance()
	out := []any{}
	for {
		p.skipNewlines()
		if p.tok.Kind == KindRBracket {
			p.advance()
			return out, nil
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
		p.skipNewlines()
		switch p.tok.Kind {
		case KindComma:
			p.advance()
		case KindRBracket:
		default:
			return nil, p.unexpected("expected ',' or ']'")
		}
	}
}

func (p *parser) inlineTable() (map[string]any, error) {
	p.advance()
	t := make(map[string]any)
	if p.tok.Kind == KindRBrace {
		p.advance()
		return t, nil
	}
	for {
		if err := p.keyValue(t); err != nil {
			return nil, err
		}
		switch p.tok.Kind {
		case KindComma:
			p.advance()
		case KindRBrace:
			p.advance()
			return t, nil
		default:
			return nil, p.unexpected("expected ',' or '}'")
		}
	}
}
