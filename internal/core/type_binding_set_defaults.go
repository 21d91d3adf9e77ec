package core

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/defk/constants"
	"github.com/ygrebnov/defk/errors"
)

// Default returns the declared default of f and whether it has one.
// Literals are parsed into a fresh value of the field type.
func (f Field) Default() (any, bool, error) {
	switch {
	case f.DefaultTag == constants.DefaultAlloc:
		v := reflect.New(f.Type).Elem()
		switch f.Type.Kind() {
		case reflect.Slice:
			v.Set(reflect.MakeSlice(f.Type, 0, 0))
		case reflect.Map:
			v.Set(reflect.MakeMap(f.Type))
		default:
			return nil, false, errorc.With(
				errors.ErrDefaultLiteralUnsupportedKind,
				errorc.String(errors.ErrorFieldParamName, f.Name),
				errorc.String(errors.ErrorFieldDefaultLiteralKind, f.Type.Kind().String()),
			)
		}
		return v.Interface(), true, nil
	case f.DefaultTag != "":
		v, err := ParseLiteral(f.Type, f.DefaultTag)
		if err != nil {
			if errorsIsUnsupported(err) {
				return nil, false, err
			}
			return nil, false, errorc.With(
				errors.ErrSetDefault,
				errorc.String(errors.ErrorFieldParamName, f.Name),
				errorc.String(errors.ErrorFieldDefaultLiteral, f.DefaultTag),
				errorc.Error(errors.ErrorFieldCause, err),
			)
		}
		return v.Interface(), true, nil
	case f.Optional:
		return reflect.Zero(f.Type).Interface(), true, nil
	default:
		return nil, false, nil
	}
}

// Fresh returns a constructor for defaults that must not be shared between
// calls: `alloc` collections and pointer literals. It returns nil when the
// default is a plain value or when Default fails.
func (f Field) Fresh() func() reflect.Value {
	switch {
	case f.DefaultTag == constants.DefaultAlloc:
		typ := f.Type
		switch typ.Kind() {
		case reflect.Slice:
			return func() reflect.Value { return reflect.MakeSlice(typ, 0, 0) }
		case reflect.Map:
			return func() reflect.Value { return reflect.MakeMap(typ) }
		}
	case f.DefaultTag != "" && f.Type.Kind() == reflect.Ptr:
		proto, err := ParseLiteral(f.Type, f.DefaultTag)
		if err != nil {
			return nil
		}
		elem := proto.Elem()
		return func() reflect.Value {
			p := reflect.New(elem.Type())
			p.Elem().Set(elem)
			return p
		}
	}
	return nil
}

// ParseLiteral parses lit into a new value of typ.
func ParseLiteral(typ reflect.Type, lit string) (reflect.Value, error) {
	v := reflect.New(typ).Elem()
	if err := setLiteralDefault(v, lit); err != nil {
		return reflect.Value{}, err
	}
	return v, nil
}

var durationType = reflect.TypeOf(time.Duration(0))

// setLiteralDefault sets a literal default value into fv if it is zero.
// For pointer-to-scalar fields, it allocates and sets the pointed value.
//
//nolint:gocyclo,funlen // cyclomatic complexity is acceptable here
func setLiteralDefault(fv reflect.Value, lit string) error {
	target := fv
	// Allocate for pointer-to-scalar when nil
	if target.Kind() == reflect.Ptr {
		if target.IsNil() {
			ek := target.Type().Elem().Kind()
			switch ek {
			case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array:
				return unsupportedKind(ek)
			default:
				target.Set(reflect.New(target.Type().Elem()))
			}
		}
		target = target.Elem()
	}

	// Only set if zero
	if !target.CanSet() || !target.IsZero() {
		return nil
	}

	// Handle special case: time.Duration typed fields
	if target.Type() == durationType {
		d, err := time.ParseDuration(lit)
		if err != nil {
			return fmt.Errorf("parse duration: %w", err)
		}
		target.SetInt(int64(d))
		return nil
	}

	switch target.Kind() {
	case reflect.String:
		target.SetString(lit)
	case reflect.Bool:
		switch strings.ToLower(lit) {
		case "1", "true", "t", "yes", "y", "on":
			target.SetBool(true)
		case "0", "false", "f", "no", "n", "off":
			target.SetBool(false)
		default:
			return fmt.Errorf("parse bool: %q", lit)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		iv, err := parseInt64(lit)
		if err != nil {
			return err
		}
		if target.OverflowInt(iv) {
			return fmt.Errorf("parse int: %q overflows %s", lit, target.Type())
		}
		target.SetInt(iv)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		uv, err := parseUint64(lit)
		if err != nil {
			return err
		}
		if target.OverflowUint(uv) {
			return fmt.Errorf("parse uint: %q overflows %s", lit, target.Type())
		}
		target.SetUint(uv)
	case reflect.Float32, reflect.Float64:
		fv, err := parseFloat64(lit)
		if err != nil {
			return err
		}
		target.SetFloat(fv)
	default:
		return unsupportedKind(target.Kind())
	}
	return nil
}

func unsupportedKind(k reflect.Kind) error {
	return errorc.With(
		errors.ErrDefaultLiteralUnsupportedKind,
		errorc.String(errors.ErrorFieldDefaultLiteralKind, k.String()),
	)
}

func errorsIsUnsupported(err error) bool {
	return stderrors.Is(err, errors.ErrDefaultLiteralUnsupportedKind)
}

func parseInt64(s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse int: %w", err)
	}
	return v, nil
}

func parseUint64(s string) (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse uint: %w", err)
	}
	return v, nil
}

func parseFloat64(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("parse float: %w", err)
	}
	return v, nil
}
