package component

// ScreenFade is the singleton full-screen darkness overlay. Darkness runs
// 0 (clear) to 1 (black); the renderer quantizes it to four steps.
type ScreenFade struct {
	Darkness float64
}

var ScreenFadeComponent = NewComponent[ScreenFade]()
