package glimpse

import "log/slog"

// UpdateInputState returns the input state for the current frame.
type UpdateInputState func() InputState

type KeysState struct {
	// the keys that are currently marked as "pressed"
	Pressed map[Key]bool
}

func (k *KeysState) Press(key Key) {
	slog.Debug("Key pressed", slog.String("key", key.String()))

	if k.Pressed == nil {
		k.Pressed = map[Key]bool{}
	}

	k.Pressed[key] = true
}

func (k *KeysState) Release(key Key) {
	delete(k.Pressed, key)
}

type InputState struct {
	Keys KeysState
}
