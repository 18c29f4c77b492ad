package quizextractor

import (
	"fmt"
	"io"
	"mime/quotedprintable"
	"regexp"
	"strings"
)

// htmlHeaderPattern marks the start of the HTML section inside an MHTML
// container. The export always transfer-encodes this part, so the header
// line is followed by more headers and a blank line before the body.
var htmlHeaderPattern = regexp.MustCompile(`Content-Type: text/html[^\n]*`)

// ExtractHTML locates the text/html part of an MHTML document and decodes
// its quoted-printable body. The part runs from the blank line after the
// HTML content-type header up to the next multipart boundary marker, or to
// the end of the document when no boundary follows.
//
// When quoted-printable decoding fails the undecoded slice is returned
// together with ErrDecodeFailed: partially garbled text is still more
// useful downstream than nothing.
func ExtractHTML(content string) (string, error) {
	loc := htmlHeaderPattern.FindStringIndex(content)
	if loc == nil {
		return "", fmt.Errorf("extract html: %w", ErrNoHTMLPart)
	}

	rest := content[loc[1]:]

	// Skip the remaining part headers: the body starts after the first
	// blank line.
	body := rest
	if idx := strings.Index(rest, "\r\n\r\n"); idx >= 0 {
		body = rest[idx+4:]
	} else if idx := strings.Index(rest, "\n\n"); idx >= 0 {
		body = rest[idx+2:]
	}

	// Cut at the next multipart boundary, if any.
	if idx := strings.Index(body, "\n--"); idx >= 0 {
		body = body[:idx]
	}

	decoded, err := io.ReadAll(quotedprintable.NewReader(strings.NewReader(body)))
	if err != nil {
		return body, fmt.Errorf("extract html: %w: %v", ErrDecodeFailed, err)
	}
	return string(decoded), nil
}
