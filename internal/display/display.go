// Package display renders note lists, notebook summaries, and note detail
// views for the terminal. It owns all coloring and paging; the store and
// query engine hand it plain data.
package display

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/sdoconnell/nrrdnote/internal/config"
	"github.com/sdoconnell/nrrdnote/internal/note"
	"github.com/sdoconnell/nrrdnote/internal/query"
)

const fallbackPager = "less"

// Renderer writes formatted views to an output stream.
type Renderer struct {
	out    io.Writer
	styles Styles
	colors config.Colors

	// DefaultNotebook, when set, is listed first in grouped views.
	DefaultNotebook string
}

func NewRenderer(out io.Writer, colors config.Colors) *Renderer {
	return &Renderer{
		out:    out,
		styles: newStyles(colors),
		colors: colors,
	}
}

// NoteList renders a table of notes under a view title. When grouped is
// set, notes are bucketed by notebook with a subheading per group (the
// "all" view); otherwise they are listed flat, sorted by title.
func (r *Renderer) NoteList(title string, results []query.Result, grouped bool) {
	fmt.Fprintf(r.out, "\n%s\n\n", r.styles.TableTitle.Render(title))
	if len(results) == 0 {
		fmt.Fprintln(r.out, "None.")
		return
	}

	if !grouped {
		r.noteRows(results)
		return
	}

	groups := make(map[string][]query.Result)
	for _, res := range results {
		groups[res.Note.Notebook] = append(groups[res.Note.Notebook], res)
	}
	names := make([]string, 0, len(groups))
	for name := range groups {
		if name != r.DefaultNotebook {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	if _, ok := groups[r.DefaultNotebook]; ok {
		names = append([]string{r.DefaultNotebook}, names...)
	}

	for _, name := range names {
		fmt.Fprintf(r.out, "%s\n", r.styles.Notebook.Render(name+"/"))
		r.noteRows(groups[name])
		fmt.Fprintln(r.out)
	}
}

func (r *Renderer) noteRows(results []query.Result) {
	sorted := append([]query.Result(nil), results...)
	sort.Slice(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].Note.Title) < strings.ToLower(sorted[j].Note.Title)
	})

	for _, res := range sorted {
		n := res.Note
		line := fmt.Sprintf("- %s %s",
			r.styles.NoteTitle.Render(n.Title),
			r.styles.Alias.Render("("+n.Alias+")"))
		fmt.Fprintln(r.out, line)
		if n.Description != "" {
			fmt.Fprintf(r.out, "    %s\n", r.styles.Description.Render(n.Description))
		}
		if len(n.Tags) > 0 {
			fmt.Fprintf(r.out, "    %s\n", r.styles.Tags.Render(strings.Join(n.Tags, ", ")))
		}
		if len(res.Excerpt) > 0 {
			fmt.Fprintf(r.out, "    %s\n", r.styles.Label.Render("matches:"))
			for _, excerpt := range res.Excerpt {
				fmt.Fprintf(r.out, "      %s\n", strings.TrimSpace(excerpt))
			}
		}
	}
}

// NotebookList renders the distinct notebooks with their note counts.
func (r *Renderer) NotebookList(notebooks []string, counts map[string]int) {
	fmt.Fprintf(r.out, "\n%s\n\n", r.styles.TableTitle.Render("Notebooks"))
	for _, name := range notebooks {
		fmt.Fprintf(r.out, "- %s %s\n",
			r.styles.Notebook.Render(name+"/"),
			r.styles.Alias.Render(fmt.Sprintf("(%d)", counts[name])))
	}
}

// Info renders the full metadata view for one note.
func (r *Renderer) Info(n *note.Note) {
	label := func(s string) string { return r.styles.Label.Render(s + ":") }

	fmt.Fprintf(r.out, "\n%s\n\n", r.styles.NoteTitle.Render(n.Title))
	fmt.Fprintf(r.out, "%s %s\n", label("alias"), n.Alias)
	fmt.Fprintf(r.out, "%s %s\n", label("uid"), n.UID)
	if n.Description != "" {
		fmt.Fprintf(r.out, "%s %s\n", label("description"), n.Description)
	}
	fmt.Fprintf(r.out, "%s %s\n", label("notebook"), n.Notebook)
	if len(n.Tags) > 0 {
		fmt.Fprintf(r.out, "%s %s\n", label("tags"), strings.Join(n.Tags, ", "))
	}
	if !n.Created.IsZero() {
		fmt.Fprintf(r.out, "%s %s\n", label("created"), n.Created.Format("2006-01-02 15:04:05"))
	}
	if !n.Updated.IsZero() {
		fmt.Fprintf(r.out, "%s %s\n", label("updated"), n.Updated.Format("2006-01-02 15:04:05"))
	}
	fmt.Fprintf(r.out, "%s %s\n", label("path"), n.Path)
}

// Page runs fn with a renderer wired to $PAGER. When the pager cannot be
// started the content falls back to direct output. Color sequences are
// only emitted when the config says the pager can take them.
func Page(colors config.Colors, fn func(r *Renderer)) error {
	pager := os.Getenv("PAGER")
	if pager == "" {
		pager = fallbackPager
	}

	if !colors.ColorPager {
		colors.DisableColors = true
	}

	var buf strings.Builder
	fn(NewRenderer(&buf, colors))

	fields := strings.Fields(pager)
	cmd := exec.Command(fields[0], fields[1:]...)
	cmd.Stdin = strings.NewReader(buf.String())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		fmt.Fprint(os.Stdout, buf.String())
	}
	return nil
}
