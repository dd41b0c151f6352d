package format

import "testing"

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		err  bool
	}{
		{"json", JSONFormat, false},
		{"j", JSONFormat, false},
		{"yaml", YAMLFormat, false},
		{"yml", YAMLFormat, false},
		{"toml", TOMLFormat, false},
		{"t", TOMLFormat, false},
		{"xml", 0, true},
		{"", 0, true},
	}
	for _, tc := range tests {
		got, err := ParseFormat(tc.in)
		if tc.err {
			if err == nil {
				t.Errorf("ParseFormat(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFromExtension(t *testing.T) {
	tests := []struct {
		name string
		want Format
		ok   bool
	}{
		{"en.json", JSONFormat, true},
		{"de.yaml", YAMLFormat, true},
		{"de.yml", YAMLFormat, true},
		{"fr.toml", TOMLFormat, true},
		{"notes.txt", 0, false},
		{"README", 0, false},
	}
	for _, tc := range tests {
		got, ok := FromExtension(tc.name)
		if ok != tc.ok {
			t.Errorf("FromExtension(%q) ok = %v, want %v", tc.name, ok, tc.ok)
			continue
		}
		if ok && got != tc.want {
			t.Errorf("FromExtension(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestSuffixRoundTrip(t *testing.T) {
	for _, f := range AllFormats() {
		got, ok := FromExtension("x" + f.Suffix())
		if !ok || got != f {
			t.Errorf("FromExtension(Suffix(%v)) = %v, %v", f, got, ok)
		}
	}
}
