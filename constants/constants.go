package constants

const Namespace = "defk"

// ErrorFieldNamespace for all exported error field keys.
const ErrorFieldNamespace = Namespace

// Struct tag names.
const (
	TagKeyword = "kw"
	TagDefault = "default"
)

// Options accepted after the name in a `kw` tag.
const (
	OptionRest     = "rest"
	OptionOptional = "optional"
	OptionDive     = "dive"
)

// SkipTag excludes a field from binding when used as the whole `kw` tag.
const SkipTag = "-"

// DefaultAlloc as a `default` tag allocates an empty map or slice.
const DefaultAlloc = "alloc"
