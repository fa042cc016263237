// Package editsession drives the transient edit flows over the ledger
// store: transaction-table edits per account and per-month rent-roll
// edits. Edits live in memory until an explicit save pushes them to the
// persistence API; a failed push surfaces the error and keeps the
// unsaved edits, it is never silently treated as success.
package editsession

import "errors"

// State is the lifecycle state of an edit session.
type State string

const (
	StateViewing State = "viewing"
	StateEditing State = "editing"
	StateSaving  State = "saving"
)

// ErrSaveFailed wraps a rejected remote save. The session stays open
// with its in-memory edits intact.
var ErrSaveFailed = errors.New("save rejected by server")

// ErrNotEditing is returned when a mutation or save is attempted
// outside the editing state.
var ErrNotEditing = errors.New("session is not in editing state")
