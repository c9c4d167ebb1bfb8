package formats

import (
	"bytes"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// ParseTOML parses a TOML layout file. Rooms are written as [[rooms]] tables
// with inline arrays of {x, y} points. Unknown keys are rejected.
func ParseTOML(data []byte) (Document, error) {
	var doc Document
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("toml decode: %w", err)
	}
	return doc, nil
}
