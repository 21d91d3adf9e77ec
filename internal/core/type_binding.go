package core

import (
	"reflect"
	"strings"
	"sync"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/defk/constants"
	"github.com/ygrebnov/defk/errors"
)

// Field describes one exported struct field declared as a parameter.
type Field struct {
	Name     string // key looked up in the input mapping
	Index    int    // struct field index
	Type     reflect.Type
	Rest     bool // collects unclaimed keys
	Optional bool // zero value is the default
	Dive     bool // nested binding request

	// DefaultTag is the raw `default` tag; empty when absent.
	DefaultTag string
}

// TypeBinding is the parsed, immutable parameter layout of a struct type.
type TypeBinding struct {
	// typ is the underlying struct type this binding was built for.
	typ    reflect.Type
	fields []Field
}

// bindings caches layouts per struct type. Only type-derived facts are
// stored, so lookups never depend on which adapter was built first.
var bindings sync.Map // map[reflect.Type]*TypeBinding

// NewTypeBinding returns the layout for the given struct type, parsing its
// `kw` and `default` tags on first use.
func NewTypeBinding(typ reflect.Type) (*TypeBinding, error) {
	if typ == nil || typ.Kind() != reflect.Struct {
		return nil, errors.ErrNotStruct
	}
	if v, ok := bindings.Load(typ); ok {
		return v.(*TypeBinding), nil
	}

	tb := &TypeBinding{typ: typ}
	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)
		// Skip unexported fields
		if sf.PkgPath != "" {
			continue
		}
		f, skip, err := parseField(sf)
		if err != nil {
			return nil, err
		}
		if skip {
			continue
		}
		f.Index = i
		tb.fields = append(tb.fields, f)
	}

	v, _ := bindings.LoadOrStore(typ, tb)
	return v.(*TypeBinding), nil
}

// Type returns the struct type.
func (tb *TypeBinding) Type() reflect.Type { return tb.typ }

// Fields returns the declared parameters in declaration order.
func (tb *TypeBinding) Fields() []Field {
	out := make([]Field, len(tb.fields))
	copy(out, tb.fields)
	return out
}

// parseField reads the `kw` tag of sf. The tag is "name,opt,opt"; an empty
// name falls back to the Go field name and "-" skips the field.
func parseField(sf reflect.StructField) (Field, bool, error) {
	f := Field{Name: sf.Name, Type: sf.Type}

	tag, hasTag := sf.Tag.Lookup(constants.TagKeyword)
	if hasTag && strings.TrimSpace(tag) == constants.SkipTag {
		return Field{}, true, nil
	}

	if hasTag {
		parts := strings.Split(tag, ",")
		if name := strings.TrimSpace(parts[0]); name != "" {
			f.Name = name
		}
		for _, opt := range parts[1:] {
			switch strings.TrimSpace(opt) {
			case "":
			case constants.OptionRest:
				f.Rest = true
			case constants.OptionOptional:
				f.Optional = true
			case constants.OptionDive:
				f.Dive = true
			default:
				return Field{}, false, errorc.With(
					errors.ErrInvalidTag,
					errorc.String(errors.ErrorFieldParamName, sf.Name),
					errorc.String(errors.ErrorFieldTag, tag),
				)
			}
		}
	}

	if dtag := sf.Tag.Get(constants.TagDefault); dtag != "" && dtag != constants.SkipTag {
		if dtag == constants.OptionDive {
			f.Dive = true
		} else {
			f.DefaultTag = dtag
		}
	}

	if f.Rest && (f.Optional || f.DefaultTag != "") {
		return Field{}, false, errorc.With(
			errors.ErrInvalidTag,
			errorc.String(errors.ErrorFieldParamName, f.Name),
			errorc.String(errors.ErrorFieldTag, tag),
		)
	}
	return f, false, nil
}
