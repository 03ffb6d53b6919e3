package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// Roll number pattern - alphanumeric with optional separators
	RollPattern = `^[A-Za-z0-9][A-Za-z0-9/\-]{1,29}$`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
	Roll  *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
	Roll:  regexp.MustCompile(RollPattern),
}
