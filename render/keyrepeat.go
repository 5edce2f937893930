package render

const (
	keyRepeatDelay    = 15 // frames before a held key starts repeating
	keyRepeatInterval = 3  // frames between repeats
)

// KeyRepeat reports whether a key held for pressedFrames frames should fire on
// this frame: once when pressed, then every keyRepeatInterval frames after
// keyRepeatDelay, like an OS key-down repeat.
func KeyRepeat(pressedFrames int) bool {
	if pressedFrames == 1 {
		return true
	}
	return pressedFrames >= keyRepeatDelay && (pressedFrames-keyRepeatDelay)%keyRepeatInterval == 0
}
