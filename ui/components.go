package ui

// Component represents a renderable layout
type Component interface {
	Render() (string, error)
}

var (
	_ Component = (*ProgressBar)(nil)
	_ Component = (*BoxComponent)(nil)
	_ Component = (*TableRenderer)(nil)
)
