// Package observability provides hooks for instrumenting layout passes.
//
// The package uses a simple hooks pattern: a hook interface with a no-op
// default implementation and a global registration point. Consumers register
// hooks at startup to receive events without the layout library taking a
// dependency on any observability backend.
//
//	func main() {
//	    observability.SetLayoutHooks(&myHooks{})
//	    // ... run application
//	}
//
// The Layout facade emits events around every Apply call:
//
//	observability.Layout().OnLayoutStart(name, nodes, edges)
//	// ... layout pass ...
//	observability.Layout().OnLayoutComplete(name, duration, success, iterations)
package observability

import (
	"sync"
	"time"
)

// LayoutHooks receives events from layout passes.
type LayoutHooks interface {
	// OnLayoutStart records the beginning of a layout pass.
	OnLayoutStart(algorithm string, nodeCount, edgeCount int)

	// OnLayoutComplete records the outcome of a layout pass.
	OnLayoutComplete(algorithm string, duration time.Duration, success bool, iterations int)
}

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnLayoutStart(string, int, int)                    {}
func (NoopLayoutHooks) OnLayoutComplete(string, time.Duration, bool, int) {}

var (
	layoutHooks LayoutHooks = NoopLayoutHooks{}
	hooksMu     sync.RWMutex
)

// SetLayoutHooks registers custom layout hooks.
// This should be called once at application startup before any layout runs.
func SetLayoutHooks(h LayoutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		layoutHooks = h
	}
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return layoutHooks
}

// Reset restores the no-op default hooks.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	layoutHooks = NoopLayoutHooks{}
}
