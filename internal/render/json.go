package render

import (
	"encoding/json"
	"io"
)

// WriteJSONLine writes v as compact JSON followed by a newline.
// A nil slice is written as [] so consumers always get an array.
func WriteJSONLine(w io.Writer, v any) error {
	if names, ok := v.([]string); ok && names == nil {
		v = []string{}
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
