package router

type (
	// History is the browser session history as the router needs it.
	History interface {
		ReplaceState(title string, path string)
		PushState(title string, path string)
		OnPopState(fn func())
		CurrentPath() string
	}

	// NoopHistory keeps history in memory. Back simulates the browser back
	// button.
	NoopHistory struct {
		entries []string
		title   string
		onPop   []func()
	}
)

func NewNoopHistory(path string) *NoopHistory {
	if path == "" {
		path = "/"
	}

	return &NoopHistory{entries: []string{path}}
}

func (h *NoopHistory) ReplaceState(title string, path string) {
	h.entries[len(h.entries)-1] = path
	h.title = title
}

func (h *NoopHistory) PushState(title string, path string) {
	h.entries = append(h.entries, path)
	h.title = title
}

func (h *NoopHistory) OnPopState(fn func()) {
	h.onPop = append(h.onPop, fn)
}

func (h *NoopHistory) CurrentPath() string {
	return h.entries[len(h.entries)-1]
}

// Len is the number of history entries.
func (h *NoopHistory) Len() int {
	return len(h.entries)
}

// Back moves to the previous entry and fires the pop state handlers. It
// reports false when there is no previous entry.
func (h *NoopHistory) Back() bool {
	if len(h.entries) < 2 {
		return false
	}

	h.entries = h.entries[:len(h.entries)-1]
	for _, fn := range h.onPop {
		fn()
	}

	return true
}
