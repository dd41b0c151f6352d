package keyrule

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadLines reads rule sources from a file: one rule per line, blank
// lines and lines starting with # ignored. Sources are returned
// uncompiled so callers can merge them with rules from elsewhere.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read rules %s: %w", path, err)
	}
	defer f.Close()

	var srcs []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		srcs = append(srcs, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read rules %s: %w", path, err)
	}
	return srcs, nil
}

// ReadFile compiles a rules file.
func ReadFile(path string) (*Set, error) {
	srcs, err := ReadLines(path)
	if err != nil {
		return nil, err
	}
	set, err := CompileAll(srcs)
	if err != nil {
		return nil, fmt.Errorf("rules %s: %w", path, err)
	}
	return set, nil
}
