package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/localekit/locsync/dirsync"
)

func TestPrinterReference(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, MonoPalette())
	p.Reference(&dirsync.RefInfo{Locale: "en", Path: "locales/en.json", KeyCount: 2})
	if got, want := buf.String(), "en.json: 2 keys (reference)\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPrinterOutcomeReportOnly(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, MonoPalette())
	p.Outcome(&dirsync.Outcome{
		Locale:     "de",
		Path:       "locales/de.json",
		KeyCount:   1,
		Missing:    []string{"a.b", "c"},
		Extraneous: []string{"d"},
	})
	want := `de.json: 1 key
  + a.b (missing)
  + c (missing)
  - d (extraneous)
`
	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrinterOutcomeFixed(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, MonoPalette())
	p.Outcome(&dirsync.Outcome{
		Locale:     "de",
		Path:       "locales/de.json",
		KeyCount:   1,
		Missing:    []string{"c"},
		Extraneous: []string{"d"},
		Skipped:    []string{"debug.x"},
		Injected:   true,
		Pruned:     true,
		Persisted:  true,
	})
	want := `de.json: 1 key
  + c (added)
  - d (removed)
  . debug.x (skipped)
`
	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrinterOutcomeDryRun(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, MonoPalette())
	p.Outcome(&dirsync.Outcome{
		Locale:   "de",
		Path:     "locales/de.json",
		KeyCount: 1,
		Missing:  []string{"c"},
		Injected: true,
	})
	if !strings.Contains(buf.String(), "+ c (would add)") {
		t.Errorf("got:\n%s", buf.String())
	}
}

func TestPrinterOutcomeInSync(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, MonoPalette())
	p.Outcome(&dirsync.Outcome{Locale: "fr", Path: "locales/fr.json", KeyCount: 2})
	if got, want := buf.String(), "fr.json: 2 keys, in sync\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPrinterSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, MonoPalette())
	p.Summary(&dirsync.Summary{Totals: dirsync.Totals{
		Locales:    3,
		InSync:     1,
		Changed:    2,
		Persisted:  2,
		Missing:    5,
		Extraneous: 1,
		Skipped:    2,
	}})
	want := "3 locales: 1 in sync, 2 changed, 2 written; 5 missing, 1 extraneous, 2 skipped\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTextDiff(t *testing.T) {
	before := "{\n  \"a\": \"1\",\n  \"d\": \"Z\"\n}\n"
	after := "{\n  \"a\": \"1\",\n  \"c\": \"Y\"\n}\n"
	got := TextDiff(before, after, MonoPalette())
	for _, want := range []string{
		`-  "d": "Z"`,
		`+  "c": "Y"`,
		` {`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("diff missing %q:\n%s", want, got)
		}
	}
}

func TestTextDiffCollapsesEqualRuns(t *testing.T) {
	lines := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		lines = append(lines, "same")
	}
	before := strings.Join(lines, "\n") + "\nold\n"
	after := strings.Join(lines, "\n") + "\nnew\n"
	got := TextDiff(before, after, MonoPalette())
	if !strings.Contains(got, "unchanged lines") {
		t.Errorf("equal run not collapsed:\n%s", got)
	}
	if strings.Count(got, "same") > 4 {
		t.Errorf("too many context lines:\n%s", got)
	}
}
