// Package defk turns functions of named parameters into keyword functions:
// functions of a single map[string]any whose entries are bound to the
// parameters by name.
//
// A target declares its parameters either as a struct type,
//
//	type In struct {
//		A    int            `kw:"a"`
//		R    int            `kw:"r" default:"101"`
//		Rest map[string]any `kw:"rest,rest"`
//	}
//	f, err := defk.New(func(in In) (int, error) { ... })
//
// or as an explicit Signature passed to Define. Parameters without a
// default are required; calling f with a mapping that lacks one returns a
// *KeyError matching ErrMissingKey. A catch-all parameter receives every
// unclaimed entry, and WithAlias (or As) binds the input mapping itself to a
// parameter. Unclaimed entries are ignored when there is no catch-all.
package defk
