package clothing

import "strings"

// BuildQuery turns features into a short shopping query: the type, the
// primary color, the pattern unless it is "solid", and the first style
// keyword. Empty values are skipped.
func BuildQuery(f Features) string {
	parts := make([]string, 0, 4)
	add := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}

	add(f.Type)
	if len(f.Color) > 0 {
		add(f.Color[0])
	}
	if !strings.EqualFold(strings.TrimSpace(f.Pattern), "solid") {
		add(f.Pattern)
	}
	if len(f.Style) > 0 {
		add(f.Style[0])
	}

	return strings.Join(parts, " ")
}
