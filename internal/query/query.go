// Package query parses the search-term grammar and evaluates it against
// a store snapshot.
//
// A search term has the form "include[%exclude]". The include side is a
// comma-separated list of field=value criteria joined with AND, or a bare
// term matched against note body text. The exclude side uses the same
// criterion syntax but joins with OR and is applied first. Body-text
// values wrapped in /slashes/ are compiled as regular expressions.
package query

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidQuery indicates search syntax that cannot be parsed.
var ErrInvalidQuery = errors.New("invalid query")

// Field identifies which note attribute a criterion applies to.
type Field int

const (
	FieldUID Field = iota
	FieldAlias
	FieldTitle
	FieldDescription
	FieldNotebook
	FieldTags
	FieldNote // body text, line-by-line
)

var fieldNames = map[string]Field{
	"uid":         FieldUID,
	"alias":       FieldAlias,
	"title":       FieldTitle,
	"description": FieldDescription,
	"notebook":    FieldNotebook,
	"tags":        FieldTags,
	"note":        FieldNote,
}

// Value is the matched text: either a literal (substring, case-insensitive)
// or a compiled pattern. Only body-text criteria ever carry a pattern.
type Value struct {
	Literal string
	Pattern *regexp.Regexp
}

// Match reports whether s matches the value. Literal matching is a
// case-insensitive substring test.
func (v Value) Match(s string) bool {
	if v.Pattern != nil {
		return v.Pattern.MatchString(s)
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(v.Literal))
}

// Criterion is one field=value test.
type Criterion struct {
	Field Field
	Value Value
	Tags  []string // populated for FieldTags: +-separated alternatives
}

// Query is a parsed search term: include criteria (AND), exclude criteria
// (OR), and any warnings produced during parsing (e.g. a regex that failed
// to compile and fell back to literal matching).
type Query struct {
	Include  []Criterion
	Exclude  []Criterion
	MatchAll bool // bare include term "any"
	Warnings []string
}

// Parse compiles a search-term string. An empty term is invalid.
func Parse(term string) (*Query, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, fmt.Errorf("%w: empty search term", ErrInvalidQuery)
	}

	q := &Query{}

	include := term
	if idx := strings.Index(term, "%"); idx >= 0 {
		include = strings.TrimSpace(term[:idx])
		exclude := strings.TrimSpace(term[idx+1:])
		if exclude != "" {
			crits, err := q.parseClause(exclude)
			if err != nil {
				return nil, err
			}
			q.Exclude = crits
		}
	}

	// An empty include side (exclude-only term) filters nothing, same
	// as the explicit "any".
	if include == "" || strings.EqualFold(include, "any") {
		q.MatchAll = true
		return q, nil
	}

	crits, err := q.parseClause(include)
	if err != nil {
		return nil, err
	}
	q.Include = crits
	return q, nil
}

// parseClause splits a clause into criteria. A clause with no recognized
// field marker at all is a bare term and matches against body text.
func (q *Query) parseClause(clause string) ([]Criterion, error) {
	if !hasFieldMarker(clause) {
		return []Criterion{q.noteCriterion(clause)}, nil
	}

	parts := strings.Split(clause, ",")
	crits := make([]Criterion, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, found := strings.Cut(part, "=")
		if !found {
			return nil, fmt.Errorf("%w: %q is not a field=value pair", ErrInvalidQuery, part)
		}
		field, ok := fieldNames[strings.ToLower(strings.TrimSpace(key))]
		if !ok {
			// A clause with at least one recognized criterion tolerates
			// stray keys; they just contribute nothing.
			continue
		}
		value = strings.TrimSpace(value)
		if value == "" {
			return nil, fmt.Errorf("%w: empty value for field %q", ErrInvalidQuery, key)
		}

		switch field {
		case FieldTags:
			tags := strings.Split(strings.ToLower(value), "+")
			crits = append(crits, Criterion{Field: FieldTags, Tags: tags})
		case FieldNote:
			c := q.noteCriterion(value)
			crits = append(crits, c)
		default:
			crits = append(crits, Criterion{Field: field, Value: Value{Literal: value}})
		}
	}
	if len(crits) == 0 {
		return nil, fmt.Errorf("%w: empty clause", ErrInvalidQuery)
	}
	return crits, nil
}

// noteCriterion builds a body-text criterion, compiling /…/ values as
// regular expressions. An invalid pattern falls back to literal matching
// with a recorded warning.
func (q *Query) noteCriterion(value string) Criterion {
	if len(value) > 1 && strings.HasPrefix(value, "/") && strings.HasSuffix(value, "/") {
		pat := value[1 : len(value)-1]
		re, err := regexp.Compile(pat)
		if err == nil {
			return Criterion{Field: FieldNote, Value: Value{Pattern: re}}
		}
		q.Warnings = append(q.Warnings,
			fmt.Sprintf("invalid regex %q, matching as literal text: %v", pat, err))
	}
	return Criterion{Field: FieldNote, Value: Value{Literal: value}}
}

// hasFieldMarker reports whether any comma-separated segment of the clause
// starts with a recognized field name followed by '='.
func hasFieldMarker(clause string) bool {
	for _, part := range strings.Split(clause, ",") {
		key, _, found := strings.Cut(part, "=")
		if !found {
			continue
		}
		if _, ok := fieldNames[strings.ToLower(strings.TrimSpace(key))]; ok {
			return true
		}
	}
	return false
}
