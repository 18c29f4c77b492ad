package quizextractor

import "regexp"

// blockStartPattern matches the container element that opens one question in
// the export markup: a div carrying the Qr7Oae class and the listitem role.
// The class name is a fixed landmark of this vendor's markup, not a general
// convention.
var blockStartPattern = regexp.MustCompile(`<div[^>]*class="[^"]*Qr7Oae[^"]*"[^>]*role="listitem"[^>]*>`)

// SplitBlocks splits decoded markup into one span per question. Each block
// starts at a question container marker and extends non-greedily to the next
// occurrence of the same marker; the last block runs to the end of the
// document. Source order is preserved and is the only ordering signal the
// markup carries.
func SplitBlocks(html string) []string {
	starts := blockStartPattern.FindAllStringIndex(html, -1)
	if len(starts) == 0 {
		return nil
	}

	blocks := make([]string, 0, len(starts))
	for i, loc := range starts {
		end := len(html)
		if i+1 < len(starts) {
			end = starts[i+1][0]
		}
		blocks = append(blocks, html[loc[0]:end])
	}
	return blocks
}
