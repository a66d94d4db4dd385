package wordinfo

import (
	"fmt"
	"strings"
)

// FormatMeanings formats meanings for terminal display. Each part of speech
// is a heading followed by its numbered meanings; examples are indented
// below their meaning. Parts of speech are separated by blank lines.
func FormatMeanings(m Meanings) string {
	if m.Len() == 0 {
		return ""
	}

	parts := make([]string, 0, m.Len())
	for _, s := range m.sections {
		var b strings.Builder
		b.WriteString(s.PartOfSpeech)
		for i, meaning := range s.Meanings {
			fmt.Fprintf(&b, "\n  %d. %s", i+1, strings.TrimSpace(meaning.Text))
			if meaning.Example != nil {
				if example := strings.TrimSpace(*meaning.Example); example != "" {
					fmt.Fprintf(&b, "\n     e.g. %s", example)
				}
			}
		}
		parts = append(parts, b.String())
	}

	return strings.Join(parts, "\n\n")
}

// FormatWords formats a word list one word per line.
func FormatWords(words []string) string {
	return strings.Join(words, "\n")
}

// FormatPartOfSpeech formats the label or labels one per line.
func FormatPartOfSpeech(p PartOfSpeech) string {
	return strings.Join(p.Labels(), "\n")
}
