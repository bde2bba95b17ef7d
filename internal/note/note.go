// Package note provides the note record and the front-matter file codec.
package note

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/araddon/dateparse"
	"gopkg.in/yaml.v3"
)

// ErrMalformedNote indicates a file without a usable front-matter block.
var ErrMalformedNote = errors.New("no front-matter block found")

// Note is the parsed contents of one note file.
type Note struct {
	UID         string
	Alias       string
	Title       string
	Description string
	Notebook    string
	Tags        []string
	Created     time.Time
	Updated     time.Time // derived from file mtime at load, never persisted
	Body        string
	Path        string // derived, not a stored field
}

// header is the persisted front-matter field set, in declared order.
type header struct {
	UID         string   `yaml:"uid"`
	Created     string   `yaml:"created,omitempty"`
	Alias       string   `yaml:"alias"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description,omitempty"`
	Notebook    string   `yaml:"notebook"`
	Tags        []string `yaml:"tags,omitempty"`
}

var headerRe = regexp.MustCompile(`(?ms)^---\s*\n(.*?)\n---`)

// Decode parses raw file text into a Note. The first ---/--- delimited
// block is treated as the header; the body is everything after the closing
// delimiter, verbatim. Unknown header keys are ignored.
func Decode(data []byte) (*Note, error) {
	loc := headerRe.FindSubmatchIndex(data)
	if len(loc) < 4 {
		return nil, ErrMalformedNote
	}

	fm := data[loc[2]:loc[3]]
	body := data[loc[1]:]

	n := &Note{Body: string(body)}
	if err := parseHeader(fm, n); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedNote, err)
	}
	return n, nil
}

// Encode serializes a Note back to file text: the declared header fields
// in order between --- lines, with the body appended directly after the
// closing delimiter.
func Encode(n *Note) ([]byte, error) {
	h := header{
		UID:         n.UID,
		Alias:       n.Alias,
		Title:       n.Title,
		Description: n.Description,
		Notebook:    n.Notebook,
		Tags:        n.Tags,
	}
	if !n.Created.IsZero() {
		h.Created = n.Created.Format(time.RFC3339)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&h); err != nil {
		return nil, fmt.Errorf("marshal front matter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("marshal front matter: %w", err)
	}
	fm := buf.Bytes()

	out := make([]byte, 0, len(fm)+len(n.Body)+8)
	out = append(out, "---\n"...)
	out = append(out, fm...)
	out = append(out, "---"...)
	out = append(out, n.Body...)
	return out, nil
}

func parseHeader(fm []byte, n *Note) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(fm, &doc); err != nil {
		return err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil
	}
	mapping := doc.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key := mapping.Content[i].Value
		value := mapping.Content[i+1]

		switch key {
		case "uid":
			n.UID = value.Value
		case "alias":
			n.Alias = value.Value
		case "title":
			n.Title = value.Value
		case "description":
			n.Description = value.Value
		case "notebook":
			n.Notebook = value.Value
		case "tags":
			n.Tags = flattenValue(value)
		case "created":
			if t, err := dateparse.ParseAny(value.Value); err == nil {
				n.Created = t
			}
		}
	}
	return nil
}

func flattenValue(node *yaml.Node) []string {
	switch node.Kind {
	case yaml.SequenceNode:
		vals := make([]string, 0, len(node.Content))
		for _, child := range node.Content {
			if child.Value != "" {
				vals = append(vals, child.Value)
			}
		}
		return vals
	case yaml.ScalarNode:
		if node.Value == "" {
			return nil
		}
		return []string{node.Value}
	default:
		return nil
	}
}
