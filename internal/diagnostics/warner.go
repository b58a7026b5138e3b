// Package diagnostics defines the simplifier's warning sink and a couple of
// concrete implementations: a structured-logging one for embedders that
// want visibility, and a no-op one for tests.
package diagnostics

// Warner receives the simplifier's diagnostics. It never carries error
// information that changes control flow — every case it reports is
// recoverable, and the simplifier always has an answer (the input term,
// unchanged, or None from a handler) regardless of whether anything is
// listening.
type Warner interface {
	// ArityMismatch reports that a built-in was applied to the wrong
	// number of arguments.
	ArityMismatch(builtin string, want, got int)
	// MalformedInput reports that a built-in received input it cannot
	// make sense of.
	MalformedInput(builtin, detail string)
	// RecursionLimitReached reports that the context's recursion budget
	// hit zero and a term was returned unsimplified.
	RecursionLimitReached()
}

// NopWarner discards every diagnostic. It is the default for tests and for
// embedders that do not care to observe warnings.
type NopWarner struct{}

func (NopWarner) ArityMismatch(builtin string, want, got int) {}
func (NopWarner) MalformedInput(builtin, detail string)       {}
func (NopWarner) RecursionLimitReached()                      {}
