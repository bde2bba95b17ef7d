package query

import (
	"strings"

	"github.com/sdoconnell/nrrdnote/internal/note"
)

// Result pairs a matched note with the body lines that produced the match,
// when body-text criteria contributed to it.
type Result struct {
	Note    *note.Note
	Excerpt []string
}

// Evaluate runs the query over a set of notes. Exclusion is applied to the
// whole set first; the include criteria then filter the remainder. Input
// order is preserved; the engine imposes no sort of its own.
func (q *Query) Evaluate(notes []*note.Note) []Result {
	results := make([]Result, 0, len(notes))
	for _, n := range notes {
		if q.excluded(n) {
			continue
		}
		if q.MatchAll {
			results = append(results, Result{Note: n})
			continue
		}
		excerpt, ok := q.included(n)
		if !ok {
			continue
		}
		results = append(results, Result{Note: n, Excerpt: excerpt})
	}
	return results
}

// excluded reports whether any exclude criterion matches (OR semantics).
func (q *Query) excluded(n *note.Note) bool {
	for _, c := range q.Exclude {
		if matched, _ := matchCriterion(c, n, false); matched {
			return true
		}
	}
	return false
}

// included reports whether every include criterion matches (AND
// semantics), collecting body-line excerpts along the way.
func (q *Query) included(n *note.Note) ([]string, bool) {
	var excerpt []string
	for _, c := range q.Include {
		matched, lines := matchCriterion(c, n, true)
		if !matched {
			return nil, false
		}
		excerpt = append(excerpt, lines...)
	}
	return excerpt, true
}

// matchCriterion evaluates one criterion against one note. For body-text
// criteria with collect set, the matching lines are returned in original
// order.
func matchCriterion(c Criterion, n *note.Note, collect bool) (bool, []string) {
	switch c.Field {
	case FieldUID:
		return strings.EqualFold(n.UID, c.Value.Literal), nil
	case FieldAlias:
		return strings.EqualFold(n.Alias, c.Value.Literal), nil
	case FieldTitle:
		return c.Value.Match(n.Title), nil
	case FieldDescription:
		return c.Value.Match(n.Description), nil
	case FieldNotebook:
		return c.Value.Match(n.Notebook), nil
	case FieldTags:
		for _, want := range c.Tags {
			want = strings.TrimSpace(want)
			if want == "" {
				continue
			}
			for _, have := range n.Tags {
				if have == want {
					return true, nil
				}
			}
		}
		return false, nil
	case FieldNote:
		var lines []string
		for _, line := range strings.Split(n.Body, "\n") {
			if c.Value.Match(line) {
				if !collect {
					return true, nil
				}
				lines = append(lines, line)
			}
		}
		return len(lines) > 0, lines
	}
	return false, nil
}
