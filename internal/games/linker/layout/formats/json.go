package formats

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ParseJSON parses a JSON layout file. Unknown fields are rejected so typos
// such as "neighbours" do not silently drop adjacency.
func ParseJSON(data []byte) (Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("json decode: %w", err)
	}
	return doc, nil
}
