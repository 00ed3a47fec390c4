// Package report assembles marketing report documents. A Document is built
// once and rendered by both the HTML preview and the PDF download, so the two
// paths cannot diverge in content.
package report

import (
	"fmt"
	"strings"
	"time"
)

type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Table struct {
	Title   string     `json:"title"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

type Document struct {
	Title     string   `json:"title"`
	Subtitle  string   `json:"subtitle"`
	DateRange string   `json:"dateRange"`
	Metrics   []Metric `json:"metrics"`
	Tables    []Table  `json:"tables"`
}

// Filename derives the download name from the title and the given date.
func (d Document) Filename(now time.Time) string {
	return Slug(d.Title) + "-" + now.Format("2006-01-02") + ".pdf"
}

// Slug lowercases and hyphenates a title for use in filenames.
func Slug(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// Currency formats a dollar amount with thousands separators.
func Currency(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%.2f", v)
	dot := strings.IndexByte(s, '.')
	whole, frac := s[:dot], s[dot:]
	out := "$" + groupThousands(whole) + frac
	if neg {
		return "-" + out
	}
	return out
}

// Number formats an integer with thousands separators.
func Number(n int) string {
	if n < 0 {
		return "-" + groupThousands(fmt.Sprintf("%d", -n))
	}
	return groupThousands(fmt.Sprintf("%d", n))
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
