package coach

import "strings"

// wrapText wraps text to the given width at word boundaries.
// Paragraph breaks in the input are preserved as empty lines.
func wrapText(text string, width int) []string {
	if width < 10 {
		width = 10
	}
	var lines []string
	for pi, para := range strings.Split(text, "\n") {
		if pi > 0 {
			lines = append(lines, "")
		}
		words := strings.Fields(para)
		if len(words) == 0 {
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if len(line)+1+len(w) > width {
				lines = append(lines, line)
				line = w
				continue
			}
			line += " " + w
		}
		lines = append(lines, line)
	}
	// Collapse a leading empty line from a text that starts with "\n".
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	return lines
}

// truncate shortens s to at most max runes, appending "..." when cut.
// Cuts on rune boundaries so multi-byte text stays valid UTF-8.
func truncate(s string, max int) string {
	if max <= 3 {
		max = 3
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
