// Package formats provides pluggable room layout file parsers. Every format
// decodes into the same Document.
package formats

import (
	"fmt"
	"strings"
)

// Document is the on-disk shape of a room layout.
type Document struct {
	Name       string `json:"name" yaml:"name" toml:"name"`
	ActiveRoom string `json:"activeRoom" yaml:"activeRoom" toml:"activeRoom"`
	Rooms      []Room `json:"rooms" yaml:"rooms" toml:"rooms"`
}

// Room is one room in a layout file.
type Room struct {
	Name      string            `json:"name" yaml:"name" toml:"name"`
	Bricks    []Point           `json:"bricks" yaml:"bricks" toml:"bricks"`
	Pots      []Point           `json:"pots" yaml:"pots" toml:"pots"`
	Neighbors map[string]string `json:"neighbors,omitempty" yaml:"neighbors,omitempty" toml:"neighbors,omitempty"`
}

// Point is a top-left entity position in world pixels.
type Point struct {
	X int `json:"x" yaml:"x" toml:"x"`
	Y int `json:"y" yaml:"y" toml:"y"`
}

// Parser decodes a layout file.
type Parser func(data []byte) (Document, error)

var parsers = map[string]Parser{
	".json": ParseJSON,
	".yaml": ParseYAML,
	".yml":  ParseYAML,
	".toml": ParseTOML,
}

// ForExtension returns the parser for a file extension such as ".toml".
func ForExtension(ext string) (Parser, error) {
	p, ok := parsers[strings.ToLower(ext)]
	if !ok {
		return nil, fmt.Errorf("unsupported extension: %s", ext)
	}
	return p, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".json", ".yaml", ".yml", ".toml"}
}
