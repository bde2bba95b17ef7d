package display

import (
	"strings"
	"testing"

	"github.com/sdoconnell/nrrdnote/internal/config"
	"github.com/sdoconnell/nrrdnote/internal/note"
	"github.com/sdoconnell/nrrdnote/internal/query"
)

func plainRenderer(out *strings.Builder) *Renderer {
	return NewRenderer(out, config.Colors{DisableColors: true, DisableBold: true})
}

func TestNoteListGroupedDefaultFirst(t *testing.T) {
	var out strings.Builder
	r := plainRenderer(&out)
	r.DefaultNotebook = "default"

	results := []query.Result{
		{Note: &note.Note{Title: "a", Alias: "aa11", Notebook: "work"}},
		{Note: &note.Note{Title: "b", Alias: "bb22", Notebook: "default"}},
		{Note: &note.Note{Title: "c", Alias: "cc33", Notebook: "alpha"}},
	}
	r.NoteList("Notes", results, true)

	text := out.String()
	def := strings.Index(text, "default/")
	alpha := strings.Index(text, "alpha/")
	work := strings.Index(text, "work/")
	if def == -1 || alpha == -1 || work == -1 {
		t.Fatalf("missing notebook headings in output:\n%s", text)
	}
	if !(def < alpha && alpha < work) {
		t.Errorf("notebook order wrong (default=%d alpha=%d work=%d):\n%s",
			def, alpha, work, text)
	}
}

func TestNoteListExcerpt(t *testing.T) {
	var out strings.Builder
	r := plainRenderer(&out)

	results := []query.Result{
		{
			Note:    &note.Note{Title: "a", Alias: "aa11", Notebook: "work"},
			Excerpt: []string{"TODO: follow up"},
		},
	}
	r.NoteList("Search results", results, false)

	text := out.String()
	if !strings.Contains(text, "matches:") {
		t.Errorf("no excerpt block in output:\n%s", text)
	}
	if !strings.Contains(text, "TODO: follow up") {
		t.Errorf("excerpt line missing:\n%s", text)
	}
}

func TestNotebookListCounts(t *testing.T) {
	var out strings.Builder
	r := plainRenderer(&out)

	r.NotebookList([]string{"default", "work"}, map[string]int{"default": 2, "work": 5})

	text := out.String()
	if !strings.Contains(text, "default/ (2)") || !strings.Contains(text, "work/ (5)") {
		t.Errorf("counts missing:\n%s", text)
	}
}
