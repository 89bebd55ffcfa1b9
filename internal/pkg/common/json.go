package common

import (
	"encoding/json"
	"errors"
	"io"
	"strings"
)

// ParseJSON decodes a JSON string into v, rejecting trailing data.
func ParseJSON(data string, v interface{}) error {
	dec := json.NewDecoder(strings.NewReader(data))
	dec.UseNumber()

	if err := dec.Decode(v); err != nil {
		return err
	}

	if _, err := dec.Token(); err != io.EOF {
		if err != nil {
			return err
		}
		return errors.New("unexpected data after JSON value")
	}
	return nil
}

// EncodeJSONIndent writes v to w as indented UTF-8 JSON. Telugu text is
// written as-is, not \u-escaped, so exported datasets stay readable.
func EncodeJSONIndent(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// EncodeJSONLine writes v to w as a single JSON line without HTML
// escaping, the record shape used by the JSONL export modes.
func EncodeJSONLine(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
