//go:build headless

package glimpse

// NewWindow always fails in headless builds.
func NewWindow(opts WindowOptions) (Window, error) {
	return nil, ErrNoDisplay
}
