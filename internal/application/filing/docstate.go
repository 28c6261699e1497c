package filing

import (
	"sync"

	"github.com/turtacn/FilingDesk/pkg/errors"
	ftypes "github.com/turtacn/FilingDesk/pkg/types/filing"
)

// FormState is the closed state machine over the document workspace: either
// no form is open, or exactly one of the ten document forms is.  Open moves
// from any state to the named form; Close returns to the empty state.
type FormState struct {
	mu      sync.Mutex
	current ftypes.DocumentKind
	open    bool
}

// NewFormState starts in the closed state.
func NewFormState() *FormState {
	return &FormState{}
}

// Open transitions to the form for kind, from any state.
func (s *FormState) Open(kind ftypes.DocumentKind) error {
	if _, ok := ftypes.ParseDocumentKind(string(kind)); !ok {
		return errors.New(errors.ErrCodeDocumentKindUnknown, "unknown document kind: "+string(kind))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = kind
	s.open = true
	return nil
}

// Close returns to the closed state.  Closing an already-closed workspace is
// a no-op.
func (s *FormState) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = ""
	s.open = false
}

// Current reports the open form, if any.
func (s *FormState) Current() (ftypes.DocumentKind, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.open
}
