package report

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// TextDiff renders a line based diff between two document renderings,
// with -/+ prefixed lines colored by the palette. Equal runs longer
// than a few lines collapse to keep previews short.
func TextDiff(before, after string, pal *Palette) string {
	if pal == nil {
		pal = MonoPalette()
	}
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			for _, ln := range splitLines(d.Text) {
				sb.WriteString(pal.Removed("-%s", ln))
				sb.WriteByte('\n')
			}
		case diffmatchpatch.DiffInsert:
			for _, ln := range splitLines(d.Text) {
				sb.WriteString(pal.Added("+%s", ln))
				sb.WriteByte('\n')
			}
		case diffmatchpatch.DiffEqual:
			eq := splitLines(d.Text)
			if len(eq) > 4 {
				for _, ln := range eq[:2] {
					sb.WriteString(" " + ln + "\n")
				}
				sb.WriteString(pal.Note(" ... %d unchanged lines", len(eq)-4))
				sb.WriteByte('\n')
				eq = eq[len(eq)-2:]
			}
			for _, ln := range eq {
				sb.WriteString(" " + ln + "\n")
			}
		}
	}
	return sb.String()
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
