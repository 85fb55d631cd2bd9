package transport

import (
	"encoding/json"
	"errors"
)

// DecodeLenient unmarshals JSON tolerantly: unknown keys are ignored
// and a field whose wire value does not match its declared type is left
// at its default instead of failing the whole decode. Only a
// fundamentally malformed payload (non-JSON, truncated) is an error.
//
// encoding/json already skips unknown keys and, on a type mismatch,
// records the first error while continuing to decode the remaining
// fields, so discarding UnmarshalTypeError yields exactly the
// null-coercion behavior the backends require.
func DecodeLenient(data []byte, v interface{}) error {
	err := json.Unmarshal(data, v)
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return nil
	}
	return err
}
