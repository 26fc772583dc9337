// Package export renders a finished document into a downloadable .docx.
// The generation output is markdown-ish text; we parse just enough
// structure (headings and paragraphs) to produce a styled document.
package export

import "strings"

// Block is one renderable unit. Level 0 is a body paragraph; levels 1-3
// map to heading styles.
type Block struct {
	Level int
	Text  string
}

// ParseMarkdown splits text into heading and paragraph blocks. Only ATX
// headings (#, ##, ###) are recognized; deeper headings render as level
// 3. Inline emphasis markers are stripped since the docx writer emits
// plain runs.
func ParseMarkdown(text string) []Block {
	var blocks []Block
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		level := 0
		for level < len(trimmed) && trimmed[level] == '#' {
			level++
		}
		if level > 0 && level < len(trimmed) && trimmed[level] == ' ' {
			if level > 3 {
				level = 3
			}
			blocks = append(blocks, Block{Level: level, Text: stripEmphasis(strings.TrimSpace(trimmed[strings.IndexByte(trimmed, ' '):]))})
			continue
		}

		blocks = append(blocks, Block{Level: 0, Text: stripEmphasis(trimmed)})
	}
	return blocks
}

func stripEmphasis(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	return s
}
