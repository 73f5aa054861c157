// Package document splits filter input files into optional YAML front matter
// and the body handed to a text format.
package document

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
)

// Document is a parsed input file.
type Document struct {
	Title    string
	Format   string
	Langcode string
	Custom   map[string]any
	Body     string
}

// Parse extracts front matter from source. Sources without front matter
// produce an empty header and the whole input as body.
func Parse(source []byte) (*Document, error) {
	var meta envelope

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	custom := make(map[string]any, len(meta.Custom))
	for key, value := range meta.Custom {
		custom[key] = value
	}

	return &Document{
		Title:    strings.TrimSpace(meta.Title),
		Format:   strings.TrimSpace(meta.Format),
		Langcode: strings.TrimSpace(meta.Langcode),
		Custom:   custom,
		Body:     string(body),
	}, nil
}

type envelope struct {
	Title    string         `yaml:"title"`
	Format   string         `yaml:"format"`
	Langcode string         `yaml:"langcode"`
	Custom   map[string]any `yaml:",inline"`
}
