// Package parse parses document text into node trees.
package parse

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/jdoc-format/go-jdoc/node"
	"github.com/jdoc-format/go-jdoc/token"
)

// Parse builds a tree from d. Parsing is best-effort: every syntax error is
// accumulated into the returned error while parsing continues, and a partial
// tree is always returned. Callers that ignore the error get a usable
// best-effort document; callers that care about validity check it.
func Parse(d []byte, opts ...ParseOption) (*node.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	toks, tokErr := token.Tokenize(d)
	p := &parser{toks: toks}
	res := p.value()
	if t := p.peek(); t != nil {
		p.errf("%w: trailing content at %s", ErrParse, t.Pos)
	}
	var errs []error
	if tokErr != nil {
		errs = append(errs, tokErr)
	}
	errs = append(errs, p.errs...)
	err := errors.Join(errs...)
	if pOpts.source != "" {
		res.SetMeta(pOpts.source, true)
		if err != nil {
			err = fmt.Errorf("%s: %w", pOpts.source, err)
		}
	}
	return res, err
}

func ParseString(s string, opts ...ParseOption) (*node.Node, error) {
	return Parse([]byte(s), opts...)
}

type parser struct {
	toks []token.Token
	i    int
	errs []error
}

func (p *parser) peek() *token.Token {
	if p.i >= len(p.toks) {
		return nil
	}
	return &p.toks[p.i]
}

func (p *parser) next() *token.Token {
	t := p.peek()
	if t != nil {
		p.i++
	}
	return t
}

func (p *parser) errf(format string, args ...any) {
	p.errs = append(p.errs, fmt.Errorf(format, args...))
}

func (p *parser) value() *node.Node {
	t := p.next()
	if t == nil {
		p.errf("%w: unexpected end of input", ErrParse)
		return node.Null()
	}
	switch t.Type {
	case token.TLCurl:
		return p.object()
	case token.TLSquare:
		return p.list()
	case token.TString:
		v, err := token.Unquote(t.Bytes)
		if err != nil {
			p.errf("%w at %s", err, t.Pos)
		}
		return node.FromString(v)
	case token.TNumber:
		return p.number(t)
	case token.TTrue:
		return node.FromBool(true)
	case token.TFalse:
		return node.FromBool(false)
	case token.TNull:
		return node.Null()
	default:
		p.errf("%w: unexpected %s at %s", ErrParse, t.Type, t.Pos)
		return node.Null()
	}
}

func (p *parser) number(t *token.Token) *node.Node {
	if !t.IsFloat {
		i, err := strconv.ParseInt(string(t.Bytes), 10, 64)
		if err == nil {
			return node.FromInt(i)
		}
		// out of int64 range, fall through to float
	}
	f, err := strconv.ParseFloat(string(t.Bytes), 64)
	if err != nil {
		p.errf("%w: number %q at %s: %v", ErrParse, t.Bytes, t.Pos, err)
		return node.Null()
	}
	return node.FromFloat(f)
}

func (p *parser) object() *node.Node {
	res := node.FromMap(map[string]*node.Node{})
	m := res.Map()
	for {
		t := p.peek()
		if t == nil {
			p.errf("%w: unterminated object", ErrParse)
			return res
		}
		switch t.Type {
		case token.TRCurl:
			p.i++
			return res
		case token.TComma:
			// separators are advisory on input, incl. trailing commas
			p.i++
			continue
		case token.TString:
		default:
			p.errf("%w: expected field name, got %s at %s", ErrParse, t.Type, t.Pos)
			p.skipEntry()
			continue
		}
		p.i++
		key, err := token.Unquote(t.Bytes)
		if err != nil {
			p.errf("%w at %s", err, t.Pos)
		}
		if ct := p.peek(); ct != nil && ct.Type == token.TColon {
			p.i++
		} else {
			p.errf("%w: expected ':' after %q at %s", ErrParse, key, t.Pos)
		}
		// duplicate keys: last one wins
		m[key] = p.value()
	}
}

// skipEntry advances past a malformed object entry, to the next separator
// or closing brace.
func (p *parser) skipEntry() {
	for {
		t := p.peek()
		if t == nil {
			return
		}
		switch t.Type {
		case token.TComma, token.TRCurl:
			return
		}
		p.i++
	}
}

func (p *parser) list() *node.Node {
	res := node.FromSlice(nil)
	l := res.ForceList()
	for {
		t := p.peek()
		if t == nil {
			p.errf("%w: unterminated list", ErrParse)
			return res
		}
		switch t.Type {
		case token.TRSquare:
			p.i++
			return res
		case token.TComma:
			p.i++
			continue
		default:
			*l = append(*l, p.value())
		}
	}
}
