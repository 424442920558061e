package splitics

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Size specifications accept kilobytes and megabytes only, with an optional
// trailing B, eg "500K", "1M", "2kb".
var sizePattern = regexp.MustCompile(`^(\d+)([Kk]|M)[Bb]?$`)

// ParseSize converts a human-readable size specification to bytes. It fails
// with *InvalidSizeError for anything outside the accepted syntax.
func ParseSize(spec string) (int64, error) {
	m := sizePattern.FindStringSubmatch(spec)
	if m == nil {
		return 0, &InvalidSizeError{Spec: spec}
	}
	value, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, &InvalidSizeError{Spec: spec}
	}
	if strings.EqualFold(m[2], "K") {
		return value * 1024, nil
	}
	return value * 1024 * 1024, nil
}

// FormatSize renders a byte count the way the summary report shows it.
func FormatSize(size int64) string {
	kb := float64(size) / 1024
	if kb >= 1024 {
		return fmt.Sprintf("%.1f MB", kb/1024)
	}
	return fmt.Sprintf("%.0f KB", kb)
}

// Summary renders the report for a finished split, one line per part.
func Summary(prefix string, parts []Chunk, dryRun bool) string {
	action := "Split"
	if dryRun {
		action = "Would split"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s into %d file%s:\n", action, len(parts), plural(len(parts)))
	for _, p := range parts {
		fmt.Fprintf(&b, "  %s (%s, %d event%s)\n",
			PartName(prefix, p.Seq), FormatSize(p.Size), p.Events, plural(p.Events))
	}
	return b.String()
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
