package quizextractor

// Diagnostic logging is off by default so programs embedding the pipeline
// (the webserver does) stay quiet; the CLIs flip it on behind -verbose.

import "log"

var verboseMode bool

// SetVerbose toggles diagnostic logging for the whole package.
func SetVerbose(verbose bool) {
	verboseMode = verbose
}

// VerboseLog writes one diagnostic line when verbose mode is on. Pipeline
// stages use it for per-block detail that would drown normal CLI output.
func VerboseLog(format string, v ...interface{}) {
	if !verboseMode {
		return
	}
	log.Printf(format, v...)
}
