package renderer

// ProgressObserver receives the number of completed pixels as a render advances.
// Calls come from a single goroutine and completed never decreases.
type ProgressObserver interface {
	OnProgress(completed, total int)
}

// ProgressFunc adapts a plain function to ProgressObserver
type ProgressFunc func(completed, total int)

// OnProgress calls f(completed, total)
func (f ProgressFunc) OnProgress(completed, total int) {
	f(completed, total)
}
