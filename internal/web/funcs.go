package web

import (
	"html/template"
	"time"

	"github.com/dustin/go-humanize"
)

const maxStars = 5

var templateFuncs = template.FuncMap{
	"ago":     ago,
	"percent": func(f float64) int { return int(f * 100) },
	"stars":   stars,
}

// ago renders a completion time such as "3 minutes ago".
func ago(t *time.Time) string {
	if t == nil {
		return ""
	}
	return humanize.Time(*t)
}

// stars returns one entry per star, true for the filled ones.
func stars(n int) []bool {
	out := make([]bool, maxStars)
	for i := range out {
		out[i] = i < n
	}
	return out
}
