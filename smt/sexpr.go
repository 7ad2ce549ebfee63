package smt

import (
	"strings"

	"github.com/pkg/errors"
)

// SExpr is a parsed solver response node: either an atom or a list.
type SExpr struct {
	Atom string
	List []*SExpr
}

// IsAtom reports whether the node is an atom.
func (e *SExpr) IsAtom() bool { return e.List == nil }

// String renders the node back into SMT-LIB syntax.
func (e *SExpr) String() string {
	if e.IsAtom() {
		return e.Atom
	}
	parts := make([]string, len(e.List))
	for i, sub := range e.List {
		parts[i] = sub.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// ParseSExprs reads every s-expression in the input. Quoted symbols keep
// their content without the pipes; string literals keep their quotes.
func ParseSExprs(input string) ([]*SExpr, error) {
	p := &sexprParser{input: input}
	var nodes []*SExpr
	for {
		p.skipSpace()
		if p.pos >= len(p.input) {
			return nodes, nil
		}
		node, err := p.parse()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
}

type sexprParser struct {
	input string
	pos   int
}

func (p *sexprParser) skipSpace() {
	for p.pos < len(p.input) {
		switch p.input[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		case ';': // comment to end of line
			for p.pos < len(p.input) && p.input[p.pos] != '\n' {
				p.pos++
			}
		default:
			return
		}
	}
}

func (p *sexprParser) parse() (*SExpr, error) {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return nil, errors.New("smt: unexpected end of solver response")
	}

	switch p.input[p.pos] {
	case '(':
		p.pos++
		node := &SExpr{List: []*SExpr{}}
		for {
			p.skipSpace()
			if p.pos >= len(p.input) {
				return nil, errors.New("smt: unbalanced parenthesis in solver response")
			}
			if p.input[p.pos] == ')' {
				p.pos++
				return node, nil
			}
			sub, err := p.parse()
			if err != nil {
				return nil, err
			}
			node.List = append(node.List, sub)
		}

	case ')':
		return nil, errors.New("smt: unexpected ')' in solver response")

	case '|':
		end := strings.IndexByte(p.input[p.pos+1:], '|')
		if end < 0 {
			return nil, errors.New("smt: unterminated quoted symbol in solver response")
		}
		atom := p.input[p.pos+1 : p.pos+1+end]
		p.pos += end + 2
		return &SExpr{Atom: atom}, nil

	case '"':
		end := strings.IndexByte(p.input[p.pos+1:], '"')
		if end < 0 {
			return nil, errors.New("smt: unterminated string in solver response")
		}
		atom := p.input[p.pos : p.pos+end+2]
		p.pos += end + 2
		return &SExpr{Atom: atom}, nil

	default:
		start := p.pos
		for p.pos < len(p.input) && !isDelimiter(p.input[p.pos]) {
			p.pos++
		}
		return &SExpr{Atom: p.input[start:p.pos]}, nil
	}
}

func isDelimiter(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '(', ')', ';', '|', '"':
		return true
	}
	return false
}
