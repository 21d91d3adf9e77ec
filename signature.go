package defk

import (
	"strings"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/defk/errors"
)

// Param declares one named parameter of a keyword function.
type Param struct {
	Name       string
	HasDefault bool
	Default    any // meaningful only when HasDefault is set
}

// Required declares a parameter that must be present in the input mapping.
func Required(name string) Param {
	return Param{Name: name}
}

// Optional declares a parameter bound to def when the input mapping lacks it.
func Optional(name string, def any) Param {
	return Param{Name: name, HasDefault: true, Default: def}
}

// Signature is the declared parameter list of a keyword function.
//
// Params are bound by name; their order is kept for Args.Values and for
// diagnostics. Rest, when non-empty, names the catch-all parameter that
// receives every entry not claimed by Params or by the alias.
type Signature struct {
	Params []Param
	Rest   string
}

// String renders the signature as "(a, b=10, **rest)".
func (s Signature) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, p := range s.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
		if p.HasDefault {
			b.WriteString("=...")
		}
	}
	if s.Rest != "" {
		if len(s.Params) > 0 {
			b.WriteString(", ")
		}
		b.WriteString("**")
		b.WriteString(s.Rest)
	}
	b.WriteByte(')')
	return b.String()
}

// binder is a classified signature. It is never mutated after compile.
type binder struct {
	params []Param
	index  map[string]int
	rest   string
	alias  string
	// claimed holds every key that must not land in the catch-all.
	claimed map[string]struct{}
	// declared keeps the full parameter list, alias included, for Signature.
	declared []Param
}

// compile classifies sig against the configured alias and checks that the
// alias, the catch-all and every parameter name are pairwise distinct.
func compile(sig Signature, cfg *config) (*binder, error) {
	s := &binder{
		index:   make(map[string]int, len(sig.Params)),
		claimed: make(map[string]struct{}, len(sig.Params)),
		rest:    sig.Rest,
		alias:   cfg.alias,
	}

	seen := make(map[string]struct{}, len(sig.Params)+1)
	declare := func(name string) error {
		if name == "" {
			return errors.ErrInvalidName
		}
		if _, dup := seen[name]; dup {
			return errorc.With(errors.ErrDuplicateName, errorc.String(errors.ErrorFieldParamName, name))
		}
		seen[name] = struct{}{}
		return nil
	}

	aliasFound := false
	for _, p := range sig.Params {
		if err := declare(p.Name); err != nil {
			return nil, err
		}
		if s.alias != "" && p.Name == s.alias {
			aliasFound = true
			s.claimed[p.Name] = struct{}{}
			s.declared = append(s.declared, Param{Name: p.Name})
			continue
		}
		if def, ok := cfg.defaults[p.Name]; ok {
			p.HasDefault, p.Default = true, def
		}
		if !p.HasDefault {
			p.Default = nil
		}
		s.declared = append(s.declared, p)
		s.index[p.Name] = len(s.params)
		s.params = append(s.params, p)
		s.claimed[p.Name] = struct{}{}
	}

	if s.rest != "" {
		if s.rest == s.alias {
			return nil, errorc.With(
				errors.ErrDuplicateName,
				errorc.String(errors.ErrorFieldAliasName, s.alias),
			)
		}
		if err := declare(s.rest); err != nil {
			return nil, err
		}
	}

	if s.alias != "" && !aliasFound {
		return nil, errorc.With(errors.ErrAliasNotFound, errorc.String(errors.ErrorFieldAliasName, s.alias))
	}

	for name := range cfg.defaults {
		if _, ok := s.index[name]; !ok {
			return nil, errorc.With(errors.ErrDefaultNotFound, errorc.String(errors.ErrorFieldParamName, name))
		}
	}
	return s, nil
}

// bind resolves every parameter from d. Nothing is bound unless every
// required parameter resolves.
func (s *binder) bind(d map[string]any) (Args, error) {
	values := make([]any, len(s.params))
	defaulted := make([]bool, len(s.params))
	for i, p := range s.params {
		if v, ok := d[p.Name]; ok {
			values[i] = v
			continue
		}
		if p.HasDefault {
			values[i] = p.Default
			defaulted[i] = true
			continue
		}
		return Args{}, &KeyError{Key: p.Name}
	}

	a := Args{binder: s, values: values, defaulted: defaulted}
	if s.alias != "" {
		a.whole = d
	}
	if s.rest != "" {
		rest := make(map[string]any, len(d))
		for k, v := range d {
			if _, ok := s.claimed[k]; !ok {
				rest[k] = v
			}
		}
		a.rest = rest
	}
	return a, nil
}

// signature returns a copy of the declared signature with option defaults
// applied.
func (s *binder) signature() Signature {
	params := make([]Param, len(s.declared))
	copy(params, s.declared)
	return Signature{Params: params, Rest: s.rest}
}
