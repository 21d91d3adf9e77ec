package defk

import "github.com/ygrebnov/defk/errors"

// Func is a keyword function: it takes one mapping and calls its target with
// the entries bound to the target's declared parameters.
//
// A Func is immutable and safe for concurrent use when its target is.
type Func[R any] struct {
	binder *binder
	target func(Args) (R, error)
}

// Define builds a keyword function from an explicit signature. fn receives
// the resolved Args.
func Define[R any](sig Signature, fn func(Args) (R, error), opts ...Option) (*Func[R], error) {
	if fn == nil {
		return nil, errors.ErrNilTarget
	}
	s, err := compile(sig, newConfig(opts))
	if err != nil {
		return nil, err
	}
	return &Func[R]{binder: s, target: fn}, nil
}

// DefineAs returns a constructor that binds the whole input mapping to the
// parameter named alias.
func DefineAs[R any](alias string) func(Signature, func(Args) (R, error)) (*Func[R], error) {
	return func(sig Signature, fn func(Args) (R, error)) (*Func[R], error) {
		return Define(sig, fn, WithAlias(alias))
	}
}

// Must panics if err is non-nil. It is meant for package-level keyword
// functions whose construction cannot fail at run time.
func Must[R any](f *Func[R], err error) *Func[R] {
	if err != nil {
		panic(err)
	}
	return f
}

// Call binds d and invokes the target. A required parameter absent from d
// yields a *KeyError and the target is not called. The target's own result
// and error are returned unchanged.
func (f *Func[R]) Call(d map[string]any) (R, error) {
	args, err := f.binder.bind(d)
	if err != nil {
		var zero R
		return zero, err
	}
	return f.target(args)
}

// Signature returns the declared signature, defaults from options included.
func (f *Func[R]) Signature() Signature { return f.binder.signature() }

// Alias returns the name of the parameter bound to the whole mapping, if any.
func (f *Func[R]) Alias() string { return f.binder.alias }
