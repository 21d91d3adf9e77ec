package defk

import "github.com/ygrebnov/defk/errors"

// Sentinel errors re-exported for callers. Use errors.Is to match.
var (
	// ErrConfiguration matches every construction-time error.
	ErrConfiguration = errors.ErrConfiguration

	ErrNilTarget                     = errors.ErrNilTarget
	ErrNotStruct                     = errors.ErrNotStruct
	ErrDuplicateRest                 = errors.ErrDuplicateRest
	ErrAliasNotFound                 = errors.ErrAliasNotFound
	ErrDuplicateName                 = errors.ErrDuplicateName
	ErrInvalidName                   = errors.ErrInvalidName
	ErrInvalidTag                    = errors.ErrInvalidTag
	ErrNestedBinding                 = errors.ErrNestedBinding
	ErrInvalidFieldType              = errors.ErrInvalidFieldType
	ErrSetDefault                    = errors.ErrSetDefault
	ErrDefaultLiteralUnsupportedKind = errors.ErrDefaultLiteralUnsupportedKind
	ErrDefaultNotFound               = errors.ErrDefaultNotFound

	ErrMissingKey   = errors.ErrMissingKey
	ErrTypeMismatch = errors.ErrTypeMismatch
)
