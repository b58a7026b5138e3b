package diagnostics

import (
	"github.com/tliron/commonlog"
)

// ScopeWarner reports diagnostics through a named commonlog logger, the
// same facade used to configure logging in the demo binary.
type ScopeWarner struct {
	log commonlog.Logger
}

// NewScopeWarner creates a Warner that logs under name at warning level.
func NewScopeWarner(name string) *ScopeWarner {
	return &ScopeWarner{log: commonlog.GetLogger(name)}
}

func (w *ScopeWarner) ArityMismatch(builtin string, want, got int) {
	w.log.Warningf("%s: expected %d argument(s), got %d", builtin, want, got)
}

func (w *ScopeWarner) MalformedInput(builtin, detail string) {
	w.log.Warningf("%s: malformed input: %s", builtin, detail)
}

func (w *ScopeWarner) RecursionLimitReached() {
	w.log.Warning("recursion limit reached; returning term unsimplified")
}
