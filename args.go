package defk

import (
	"fmt"
	"reflect"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/defk/errors"
)

// Args is one resolved call of a keyword function.
type Args struct {
	binder *binder
	values []any
	whole  map[string]any
	rest   map[string]any
	// defaulted marks values taken from a declared default.
	defaulted []bool
}

// Lookup returns the value bound to the named parameter. The alias name
// yields the input mapping and the catch-all name yields the collected
// entries.
func (a Args) Lookup(name string) (any, bool) {
	if a.binder == nil {
		return nil, false
	}
	switch {
	case a.binder.alias != "" && name == a.binder.alias:
		return a.whole, true
	case a.binder.rest != "" && name == a.binder.rest:
		return a.rest, true
	}
	i, ok := a.binder.index[name]
	if !ok {
		return nil, false
	}
	return a.values[i], true
}

// Get is Lookup without the presence flag.
func (a Args) Get(name string) any {
	v, _ := a.Lookup(name)
	return v
}

// Values returns the ordinary parameter values in declaration order.
func (a Args) Values() []any {
	out := make([]any, len(a.values))
	copy(out, a.values)
	return out
}

// Whole returns the input mapping itself when an alias is configured.
func (a Args) Whole() map[string]any { return a.whole }

// Rest returns the catch-all entries, or nil without a catch-all parameter.
func (a Args) Rest() map[string]any { return a.rest }

// Value returns the named parameter as a T.
func Value[T any](a Args, name string) (T, error) {
	var zero T
	v, ok := a.Lookup(name)
	if !ok {
		return zero, &KeyError{Key: name}
	}
	if v == nil {
		switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
		case reflect.Interface, reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return zero, nil
		}
		return zero, typeMismatch[T](name, "nil")
	}
	t, ok := v.(T)
	if !ok {
		return zero, typeMismatch[T](name, fmt.Sprintf("%T", v))
	}
	return t, nil
}

func typeMismatch[T any](name, valueType string) error {
	return errorc.With(
		errors.ErrTypeMismatch,
		errorc.String(errors.ErrorFieldParamName, name),
		errorc.String(errors.ErrorFieldParamType, reflect.TypeOf((*T)(nil)).Elem().String()),
		errorc.String(errors.ErrorFieldValueType, valueType),
	)
}
