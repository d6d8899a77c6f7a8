package domain

// SyncAction classifies the per-creative outcome of one sync batch.
type SyncAction string

const (
	ActionCreated   SyncAction = "created"
	ActionUpdated   SyncAction = "updated"
	ActionUnchanged SyncAction = "unchanged"
	ActionFailed    SyncAction = "failed"
)

// ValidationMode governs how assignment errors propagate. Per-creative
// validation and render errors are always captured per item regardless
// of mode.
type ValidationMode string

const (
	// ValidationStrict aborts the whole assignment phase on the first
	// assignment error.
	ValidationStrict ValidationMode = "strict"
	// ValidationLenient records assignment errors per (creative, package)
	// pair and keeps going.
	ValidationLenient ValidationMode = "lenient"
)

// Valid reports whether m is a recognized mode. The zero value is not
// valid; callers default it explicitly.
func (m ValidationMode) Valid() bool {
	return m == ValidationStrict || m == ValidationLenient
}
