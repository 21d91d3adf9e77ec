package defk

import (
	"encoding/json"
	"strconv"

	"github.com/ygrebnov/defk/constants"
)

// KeyError reports a required parameter missing from the input mapping.
// It matches ErrMissingKey with errors.Is.
type KeyError struct {
	Key string
}

func (e *KeyError) Error() string {
	return constants.Namespace + ": missing key " + strconv.Quote(e.Key)
}

func (e *KeyError) Unwrap() error { return ErrMissingKey }

// MarshalJSON exports KeyError as an object with key and message fields.
func (e *KeyError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key     string `json:"key"`
		Message string `json:"message"`
	}{
		Key:     e.Key,
		Message: e.Error(),
	})
}
