package quizextractor

import (
	"strings"
	"testing"
)

func TestSplitBlocks(t *testing.T) {
	html := `<html><body>
<div jsname="ab" class="geS5n Qr7Oae xx" role="listitem" data-item-id="1">first question markup</div>
<div class="Qr7Oae" role="listitem">second question markup</div>
<div class="Qr7Oae" role="listitem">third question markup</div>
</body></html>`

	blocks := SplitBlocks(html)
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(blocks))
	}
	if !strings.Contains(blocks[0], "first question") {
		t.Errorf("block 0 = %q", blocks[0])
	}
	if !strings.Contains(blocks[1], "second question") || strings.Contains(blocks[1], "third question") {
		t.Errorf("block 1 not bounded at next marker: %q", blocks[1])
	}
	// Last block runs to the end of the document.
	if !strings.Contains(blocks[2], "</html>") {
		t.Errorf("block 2 should extend to end, got %q", blocks[2])
	}
}

func TestSplitBlocksRequiresListitemRole(t *testing.T) {
	html := `<div class="Qr7Oae">class without role</div><div role="listitem">role without class</div>`
	if blocks := SplitBlocks(html); blocks != nil {
		t.Fatalf("expected no blocks, got %d", len(blocks))
	}
}

func TestSplitBlocksEmpty(t *testing.T) {
	if blocks := SplitBlocks(""); blocks != nil {
		t.Fatalf("expected nil, got %v", blocks)
	}
}
