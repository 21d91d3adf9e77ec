package errors

import (
	"errors"

	"github.com/ygrebnov/defk/constants"
)

const prefix = constants.Namespace + ": "

// ErrConfiguration is matched by every construction-time error.
var ErrConfiguration = errors.New(prefix + "invalid configuration")

// Sentinel errors for constructor misuses. Use errors.Is to match; each of
// them also matches ErrConfiguration.
var (
	ErrNilTarget                     = newConfigError("nil target")
	ErrNotStruct                     = newConfigError("target parameter must be a struct")
	ErrDuplicateRest                 = newConfigError("more than one catch-all parameter")
	ErrAliasNotFound                 = newConfigError("alias names no declared parameter")
	ErrDuplicateName                 = newConfigError("duplicate parameter name")
	ErrInvalidName                   = newConfigError("invalid parameter name")
	ErrNestedBinding                 = newConfigError("nested binding is not supported")
	ErrInvalidFieldType              = newConfigError("alias and catch-all parameters must be map[string]any")
	ErrSetDefault                    = newConfigError("cannot set default value")
	ErrDefaultLiteralUnsupportedKind = newConfigError("default literal unsupported kind")
	ErrDefaultNotFound               = newConfigError("default names no declared parameter")
	ErrInvalidTag                    = newConfigError("invalid kw tag")
)

// Invocation-time sentinels.
var (
	ErrMissingKey   = errors.New(prefix + "missing key")
	ErrTypeMismatch = errors.New(prefix + "type mismatch")
)

type configError struct{ msg string }

func newConfigError(msg string) error { return &configError{msg: prefix + msg} }

func (e *configError) Error() string { return e.msg }

func (e *configError) Is(target error) bool { return target == ErrConfiguration }

// Internal hierarchical segments used to build dotted keys.
const (
	keySegmentParam   = ".param."
	keySegmentTarget  = ".target."
	keySegmentAlias   = ".alias."
	keySegmentDefault = ".default."
)

// ErrorField is a strongly-typed key used for structured error context.
// Its underlying type is string, so it can be passed to errorc.String and errorc.Error.
type ErrorField string

func newKey(segment, name string) ErrorField {
	return ErrorField(constants.ErrorFieldNamespace + segment + name)
}

// Exported structured error field keys
var (
	ErrorFieldParamName  = newKey(keySegmentParam, "name")       // defk.param.name
	ErrorFieldParamType  = newKey(keySegmentParam, "type")       // defk.param.type
	ErrorFieldValueType  = newKey(keySegmentParam, "value_type") // defk.param.value_type
	ErrorFieldTag        = newKey(keySegmentParam, "tag")        // defk.param.tag
	ErrorFieldTargetType = newKey(keySegmentTarget, "type")      // defk.target.type
	ErrorFieldAliasName  = newKey(keySegmentAlias, "name")       // defk.alias.name
)

var (
	ErrorFieldDefaultLiteral     = newKey(keySegmentDefault, "literal")      // defk.default.literal
	ErrorFieldDefaultLiteralKind = newKey(keySegmentDefault, "literal_kind") // defk.default.literal_kind
)

var ErrorFieldCause = ErrorField(constants.ErrorFieldNamespace + ".cause")
