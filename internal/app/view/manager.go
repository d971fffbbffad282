package view

// Manager owns the view stack. The top of the stack is the active view;
// exactly one view is active at any time.
type Manager struct {
	views []View
}

// NewManager creates a manager with root as its only view and activates it.
func NewManager(root View) *Manager {
	root.Activate()
	return &Manager{views: []View{root}}
}

// Current returns the active view.
func (m *Manager) Current() View {
	return m.views[len(m.views)-1]
}

// Push deactivates the active view and makes v the active view.
func (m *Manager) Push(v View) {
	if v == nil {
		return
	}
	m.Current().Deactivate()
	m.views = append(m.views, v)
	v.Activate()
}

// Pop removes the active view and re-activates the one underneath.
// Popping the root view is reported as quit instead.
func (m *Manager) Pop() (quit bool) {
	if len(m.views) <= 1 {
		return true
	}
	m.Current().Deactivate()
	m.views[len(m.views)-1] = nil
	m.views = m.views[:len(m.views)-1]
	m.Current().Activate()
	return false
}

// Depth returns the number of views on the stack.
func (m *Manager) Depth() int {
	return len(m.views)
}

// SetSize propagates the available size to every view on the stack.
func (m *Manager) SetSize(width, height int) {
	for _, v := range m.views {
		v.SetSize(width, height)
	}
}
