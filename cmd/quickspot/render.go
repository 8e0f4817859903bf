package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hupe1980/quickspot/rank"
	"github.com/hupe1980/quickspot/record"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	matchStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(lipgloss.Color("214"))

	indexStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(4).
			Align(lipgloss.Right)

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	noDataStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

// renderer prints records for one key field.
type renderer struct {
	keyField string
	fields   []string
}

// matchSpans returns the merged byte ranges of text covered by
// case-insensitive occurrences of terms, in order. Text whose lower-case form
// changes byte length has no spans.
func matchSpans(text string, terms []string) [][2]int {
	lower := strings.ToLower(text)
	if len(lower) != len(text) {
		return nil
	}

	marked := make([]bool, len(text))
	for _, term := range terms {
		if term == "" {
			continue
		}
		for from := 0; ; {
			i := strings.Index(lower[from:], term)
			if i < 0 {
				break
			}
			start := from + i
			for k := start; k < start+len(term); k++ {
				marked[k] = true
			}
			from = start + len(term)
		}
	}

	var spans [][2]int
	for i := 0; i < len(marked); i++ {
		if !marked[i] {
			continue
		}
		j := i
		for j < len(marked) && marked[j] {
			j++
		}
		spans = append(spans, [2]int{i, j})
		i = j
	}
	return spans
}

// highlight renders the matchSpans of text with matchStyle.
func highlight(text string, terms []string) string {
	var b strings.Builder
	last := 0
	for _, sp := range matchSpans(text, terms) {
		b.WriteString(text[last:sp[0]])
		b.WriteString(matchStyle.Render(text[sp[0]:sp[1]]))
		last = sp[1]
	}
	b.WriteString(text[last:])
	return b.String()
}

func (r renderer) title(rec *record.Record) string {
	if t := rec.Text(r.keyField); t != "" {
		return t
	}
	return rec.KeyValue()
}

func (r renderer) render(w io.Writer, recs []*record.Record, query string) {
	if len(recs) == 0 {
		fmt.Fprintln(w, noDataStyle.Render("No results"))
		return
	}

	terms := strings.Fields(query)
	for i, term := range terms {
		terms[i] = strings.ToLower(term)
	}

	for i, rec := range recs {
		line := indexStyle.Render(fmt.Sprintf("%d.", i+1)) + " " +
			titleStyle.Render(highlight(r.title(rec), terms))

		var meta []string
		for _, f := range r.fields {
			if f == r.keyField {
				continue
			}
			if v := rec.Text(f); v != "" {
				meta = append(meta, f+": "+highlight(v, terms))
			}
		}
		if len(meta) > 0 {
			line += "  " + metaStyle.Render(strings.Join(meta, " · "))
		}
		fmt.Fprintln(w, line)
	}
}

func (r renderer) explain(w io.Writer, scored []rank.Scored) {
	for i, s := range scored {
		fmt.Fprintf(w, "%s %s  %s\n",
			indexStyle.Render(fmt.Sprintf("%d.", i+1)),
			titleStyle.Render(r.title(s.Record)),
			metaStyle.Render(fmt.Sprintf("score=%d length_diff=%d", s.Score, s.LengthDiff)),
		)
	}
}
