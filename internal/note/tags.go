package note

import (
	"sort"
	"strings"
)

// NormalizeTags lowercases, dedupes, and sorts a tag list. Returns nil for
// an empty result so the header omits the field entirely.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	if len(out) == 0 {
		return nil
	}
	sort.Strings(out)
	return out
}

// SplitTags parses a comma-separated tag argument.
func SplitTags(arg string) []string {
	if strings.TrimSpace(arg) == "" {
		return nil
	}
	return NormalizeTags(strings.Split(arg, ","))
}

// ApplyTagUpdate interprets the tag update syntax against a note's current
// tags: a leading '+' adds the listed tags, a leading '~' removes them,
// and anything else replaces the set wholesale.
func ApplyTagUpdate(current []string, update string) []string {
	update = strings.ToLower(strings.TrimSpace(update))
	switch {
	case update == "":
		return current
	case strings.HasPrefix(update, "+"):
		added := strings.Split(update[1:], ",")
		return NormalizeTags(append(append([]string(nil), current...), added...))
	case strings.HasPrefix(update, "~"):
		removed := make(map[string]struct{})
		for _, tag := range strings.Split(update[1:], ",") {
			removed[strings.TrimSpace(tag)] = struct{}{}
		}
		kept := make([]string, 0, len(current))
		for _, tag := range current {
			if _, drop := removed[tag]; !drop {
				kept = append(kept, tag)
			}
		}
		return NormalizeTags(kept)
	default:
		return SplitTags(update)
	}
}
