package quizextractor

import "errors"

// Sentinel failures of the extraction pipeline and dataset I/O. Callers
// distinguish them with errors.Is; everything else is wrapped context.
var (
	// ErrNoHTMLPart means the source document has no text/html section header.
	ErrNoHTMLPart = errors.New("no text/html part found in document")

	// ErrNoQuestions means the decoded markup contains no recognizable
	// question blocks. Usually the file is not a supported export.
	ErrNoQuestions = errors.New("no questions found in the file")

	// ErrDecodeFailed means quoted-printable decoding failed. The decoder
	// still returns the undecoded HTML slice alongside this error so that
	// callers can keep going with garbled text.
	ErrDecodeFailed = errors.New("quoted-printable decoding failed")

	// ErrBadDataset means a JSON file is missing the quizwhiz_quizzes array
	// or carries it with the wrong shape.
	ErrBadDataset = errors.New("invalid quiz dataset")
)
