package defk

import (
	"reflect"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/defk/errors"
	"github.com/ygrebnov/defk/internal/core"
)

// Decorator turns a struct-parameter function into a keyword function.
type Decorator[P, R any] func(fn func(P) (R, error)) (*Func[R], error)

var mappingType = reflect.TypeOf(map[string]any(nil))

// New builds a keyword function from fn, whose single parameter P is a
// struct (or pointer to struct) describing the named parameters.
//
// Each exported field is one parameter, keyed by its `kw` tag name or its Go
// name. Fields tagged `default:"<literal>"` or `kw:",optional"` are
// optional; `kw:",rest"` marks the field that collects unclaimed keys.
// Catch-all and alias fields are map[string]any or a named type with that
// underlying type. `kw:"-"` leaves a field out.
//
// Tag defaults of reference kinds (`alloc` collections, pointer literals)
// are allocated anew for every call.
//
// Construction errors match ErrConfiguration.
func New[P, R any](fn func(P) (R, error), opts ...Option) (*Func[R], error) {
	if fn == nil {
		return nil, errors.ErrNilTarget
	}

	// Obtain the reflect.Type for P. The zero value of *P is never dereferenced.
	typ := reflect.TypeOf((*P)(nil)).Elem()
	isPtr := typ.Kind() == reflect.Ptr
	if isPtr {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return nil, errorc.With(errors.ErrNotStruct, errorc.String(errors.ErrorFieldTargetType, typ.String()))
	}

	tb, err := core.NewTypeBinding(typ)
	if err != nil {
		return nil, err
	}

	cfg := newConfig(opts)
	sig, byName, err := structSignature(tb, cfg)
	if err != nil {
		return nil, err
	}
	s, err := compile(sig, cfg)
	if err != nil {
		return nil, err
	}

	st := &structTarget{
		typ:    typ,
		isPtr:  isPtr,
		params: make([]core.Field, len(s.params)),
		fresh:  make([]func() reflect.Value, len(s.params)),
	}
	for i, p := range s.params {
		f := byName[p.Name]
		st.params[i] = f
		// Option defaults are caller-owned values and are passed as given.
		if _, set := cfg.defaults[p.Name]; !set {
			st.fresh[i] = f.Fresh()
		}
	}
	if s.alias != "" {
		f := byName[s.alias]
		st.alias = &f
	}
	if s.rest != "" {
		f := byName[s.rest]
		st.rest = &f
	}

	return &Func[R]{
		binder: s,
		target: func(a Args) (R, error) {
			rv, err := st.build(a)
			if err != nil {
				var zero R
				return zero, err
			}
			return fn(rv.Interface().(P))
		},
	}, nil
}

// As returns a Decorator binding the whole input mapping to the parameter
// named alias.
func As[P, R any](alias string) Decorator[P, R] {
	return func(fn func(P) (R, error)) (*Func[R], error) {
		return New(fn, WithAlias(alias))
	}
}

// structSignature derives the declared signature of a struct layout.
func structSignature(tb *core.TypeBinding, cfg *config) (Signature, map[string]core.Field, error) {
	var sig Signature
	fields := tb.Fields()
	byName := make(map[string]core.Field, len(fields))
	target := tb.Type().String()

	for _, f := range fields {
		if f.Dive {
			return Signature{}, nil, errorc.With(
				errors.ErrNestedBinding,
				errorc.String(errors.ErrorFieldParamName, f.Name),
				errorc.String(errors.ErrorFieldTargetType, target),
			)
		}
		if _, dup := byName[f.Name]; dup {
			return Signature{}, nil, errorc.With(
				errors.ErrDuplicateName,
				errorc.String(errors.ErrorFieldParamName, f.Name),
				errorc.String(errors.ErrorFieldTargetType, target),
			)
		}
		byName[f.Name] = f

		if f.Rest {
			if sig.Rest != "" {
				return Signature{}, nil, errorc.With(
					errors.ErrDuplicateRest,
					errorc.String(errors.ErrorFieldParamName, f.Name),
					errorc.String(errors.ErrorFieldTargetType, target),
				)
			}
			if !isMappingType(f.Type) {
				return Signature{}, nil, invalidFieldType(f, target)
			}
			sig.Rest = f.Name
			continue
		}

		if cfg.alias != "" && f.Name == cfg.alias {
			if !isMappingType(f.Type) {
				return Signature{}, nil, invalidFieldType(f, target)
			}
			sig.Params = append(sig.Params, Required(f.Name))
			continue
		}

		def, ok, err := f.Default()
		if err != nil {
			return Signature{}, nil, err
		}
		if v, set := cfg.defaults[f.Name]; set {
			if !f.AssignableFrom(reflect.TypeOf(v)) {
				return Signature{}, nil, errorc.With(
					errors.ErrSetDefault,
					errorc.String(errors.ErrorFieldParamName, f.Name),
					errorc.String(errors.ErrorFieldParamType, f.Type.String()),
					errorc.String(errors.ErrorFieldValueType, typeName(v)),
				)
			}
		}
		sig.Params = append(sig.Params, Param{Name: f.Name, HasDefault: ok, Default: def})
	}
	return sig, byName, nil
}

// isMappingType reports whether typ can hold the input mapping itself:
// map[string]any or a named map type with that underlying type.
func isMappingType(typ reflect.Type) bool {
	return typ.Kind() == reflect.Map && mappingType.AssignableTo(typ)
}

func invalidFieldType(f core.Field, target string) error {
	return errorc.With(
		errors.ErrInvalidFieldType,
		errorc.String(errors.ErrorFieldParamName, f.Name),
		errorc.String(errors.ErrorFieldParamType, f.Type.String()),
		errorc.String(errors.ErrorFieldTargetType, target),
	)
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}

// structTarget fills a fresh P from resolved Args.
type structTarget struct {
	typ    reflect.Type
	isPtr  bool
	params []core.Field // aligned with binder.params
	fresh  []func() reflect.Value
	alias  *core.Field
	rest   *core.Field
}

func (st *structTarget) build(a Args) (reflect.Value, error) {
	ptr := reflect.New(st.typ)
	rv := ptr.Elem()
	for i, f := range st.params {
		if a.defaulted[i] && st.fresh[i] != nil {
			rv.Field(f.Index).Set(st.fresh[i]())
			continue
		}
		if err := f.Assign(rv, a.values[i]); err != nil {
			return reflect.Value{}, err
		}
	}
	if st.alias != nil {
		rv.Field(st.alias.Index).Set(reflect.ValueOf(a.whole))
	}
	if st.rest != nil {
		rv.Field(st.rest.Index).Set(reflect.ValueOf(a.rest))
	}
	if st.isPtr {
		return ptr, nil
	}
	return rv, nil
}
