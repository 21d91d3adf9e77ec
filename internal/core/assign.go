package core

import (
	"reflect"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/defk/errors"
)

// Assign stores v into the field f of the struct value rv.
//
// v is stored as is when assignable, converted when both types share a
// kind (e.g. string into a named string type), and nil zeroes nillable
// fields. Anything else is ErrTypeMismatch.
func (f Field) Assign(rv reflect.Value, v any) error {
	fv := rv.Field(f.Index)

	if v == nil {
		switch fv.Kind() {
		case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
			fv.Set(reflect.Zero(fv.Type()))
			return nil
		default:
			return f.mismatch("nil")
		}
	}

	val := reflect.ValueOf(v)
	switch {
	case val.Type().AssignableTo(fv.Type()):
		fv.Set(val)
	case val.Kind() == fv.Kind() && val.Type().ConvertibleTo(fv.Type()):
		fv.Set(val.Convert(fv.Type()))
	default:
		return f.mismatch(val.Type().String())
	}
	return nil
}

// AssignableFrom reports whether a value of type t can be stored in f.
func (f Field) AssignableFrom(t reflect.Type) bool {
	if t == nil {
		switch f.Type.Kind() {
		case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
			return true
		}
		return false
	}
	return t.AssignableTo(f.Type) || (t.Kind() == f.Type.Kind() && t.ConvertibleTo(f.Type))
}

func (f Field) mismatch(valueType string) error {
	return errorc.With(
		errors.ErrTypeMismatch,
		errorc.String(errors.ErrorFieldParamName, f.Name),
		errorc.String(errors.ErrorFieldParamType, f.Type.String()),
		errorc.String(errors.ErrorFieldValueType, valueType),
	)
}
