package ui

import "strings"

// WordWrap splits line into sublines no wider than maxWidth visible columns
// and reports the width of the widest one. A line that already fits is
// returned unchanged.
//
// Words are separated by single spaces and packed greedily. A word wider
// than maxWidth is cut to fill the remainder of the current subline, marked
// with a trailing hyphen, and the rest of it is carried to the next subline.
func WordWrap(line string, maxWidth int) ([]string, int) {
	if n := VisibleLen(line); n <= maxWidth {
		return []string{line}, n
	}

	words := strings.Split(line, " ")

	var sublines []string
	longest := 0

	for i := 0; i < len(words); {
		var b strings.Builder
		width := 0

		for i < len(words) {
			word := words[i]
			wordLen := VisibleLen(word)

			if width+wordLen <= maxWidth {
				b.WriteString(word)
				b.WriteByte(' ')
				width += wordLen + 1
				i++
				continue
			}

			if wordLen <= maxWidth {
				break
			}

			cutoff := maxWidth - width - 1
			if cutoff <= 0 {
				break
			}

			head, tail := splitVisible(word, cutoff)
			headLen := VisibleLen(head)
			if headLen == 0 {
				break
			}

			b.WriteString(head)
			b.WriteString("- ")
			width += headLen + 2
			words[i] = tail
		}

		// Not even one column is available: emit the word whole so the
		// loop always advances.
		if width == 0 {
			b.WriteString(words[i])
			b.WriteByte(' ')
			i++
		}

		subline := strings.TrimSuffix(b.String(), " ")
		longest = max(longest, VisibleLen(subline))
		sublines = append(sublines, subline)
	}

	return sublines, longest
}
