// Package eval provides expression evaluation over documents.
//
// Expressions are compiled and run with expr-lang against an
// environment where "doc" holds the document converted to plain Go
// values. Pointer-based helpers (get, has, getenv) are available as
// functions inside expressions.
package eval

import (
	"fmt"
	"os"

	"github.com/jdoc-format/go-jdoc/node"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Env is the expression environment. Eval seeds it with "doc"; callers
// may supply extra entries via the Env option.
type Env map[string]any

// Option configures evaluation.
type Option func(*evalOpts)

type evalOpts struct {
	extra Env
}

// WithEnv merges extra entries into the expression environment. The
// "doc" key is reserved and cannot be overridden.
func WithEnv(extra Env) Option {
	return func(o *evalOpts) {
		o.extra = extra
	}
}

// Eval compiles and runs input against doc. The document is visible as
// "doc" in the expression, so "doc.creatures.pikeman.level" or
// "len(doc.upgrades)" work the way they read.
func Eval(input string, doc *node.Node, opts ...Option) (any, error) {
	var o evalOpts
	for _, opt := range opts {
		opt(&o)
	}
	env := Env{"doc": doc.ToAny()}
	for k, v := range o.extra {
		if k == "doc" {
			continue
		}
		env[k] = v
	}
	program, err := expr.Compile(input, exprOpts(doc, env)...)
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", input, err)
	}
	res, err := vm.Run(program, map[string]any(env))
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", input, err)
	}
	return res, nil
}

// EvalNode runs input against doc and converts the result back into a
// document tree.
func EvalNode(input string, doc *node.Node, opts ...Option) (*node.Node, error) {
	res, err := Eval(input, doc, opts...)
	if err != nil {
		return nil, err
	}
	n, err := node.FromAny(res)
	if err != nil {
		return nil, fmt.Errorf("could not translate evaluation result: %w", err)
	}
	return n, nil
}

// EvalBool runs input against doc and reduces the result to a truth
// value, using the same falsiness rules as node.Truth.
func EvalBool(input string, doc *node.Node, opts ...Option) (bool, error) {
	n, err := EvalNode(input, doc, opts...)
	if err != nil {
		return false, err
	}
	return node.Truth(n), nil
}

func exprOpts(doc *node.Node, env Env) []expr.Option {
	return []expr.Option{
		expr.Env(map[string]any(env)),
		expr.AllowUndefinedVariables(),
		expr.Function("get", func(params ...any) (any, error) {
			ptr := params[0].(string)
			res, err := doc.ResolvePointer(ptr)
			if err != nil {
				return nil, err
			}
			return res.ToAny(), nil
		},
			new(func(string) any)),
		expr.Function("has", func(params ...any) (any, error) {
			ptr := params[0].(string)
			res, err := doc.ResolvePointer(ptr)
			if err != nil {
				return nil, err
			}
			return !res.IsNull(), nil
		},
			new(func(string) bool)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
