//go:build headless

package pulse

import "fmt"

// LoadGL always fails in headless builds.
func LoadGL() (GL, error) {
	return nil, fmt.Errorf("%w: built with the headless tag", ErrLoader)
}
