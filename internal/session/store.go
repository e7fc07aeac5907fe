// Package session holds the per-session slot selection register. A session
// owns at most one SelectedSlot; writing replaces what was there. There is no
// delete operation: expiry is the only way a selection goes away.
package session

import (
	"context"
	"errors"

	"github.com/chirosmith/portal-api/internal/model"
)

// ErrNoSelection is returned when a session has no current selection.
var ErrNoSelection = errors.New("no selection for session")

type SelectionStore interface {
	// Put stores the slot as the session's selection, discarding any
	// previous one.
	Put(ctx context.Context, sessionID string, slot model.SelectedSlot) error
	// Get returns the current selection or ErrNoSelection.
	Get(ctx context.Context, sessionID string) (*model.SelectedSlot, error)
}
