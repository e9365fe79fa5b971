package config

import (
	"strings"

	dmp "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff renders a line diff from before to after: removed lines start with
// "- ", added lines with "+ " and unchanged lines with two spaces. It
// returns "" when both are equal.
func Diff(before, after string) string {
	if before == after {
		return ""
	}
	d := dmp.New()
	a, b, lines := d.DiffLinesToChars(before, after)
	diffs := d.DiffCharsToLines(d.DiffMain(a, b, false), lines)

	var sb strings.Builder
	for _, df := range diffs {
		prefix := "  "
		switch df.Type {
		case dmp.DiffDelete:
			prefix = "- "
		case dmp.DiffInsert:
			prefix = "+ "
		}
		for _, ln := range strings.SplitAfter(df.Text, "\n") {
			if ln == "" {
				continue
			}
			sb.WriteString(prefix + strings.TrimSuffix(ln, "\n") + "\n")
		}
	}
	return sb.String()
}
