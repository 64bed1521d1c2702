package glimpse

import "fmt"

type Key uint32

const (
	KeyUnknown Key = iota
	KeyEscape
)

func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "Escape"
	default:
		return fmt.Sprintf("Key(%d)", uint32(k))
	}
}
