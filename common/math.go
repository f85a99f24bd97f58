package common

// TileSize is the size of one grid tile in pixels. The authored world file
// must agree with this; worlds.Parse rejects projects with a different size.
const TileSize = 16

// BaseWidth and BaseHeight are the logical screen size in pixels.
const (
	BaseWidth  = 160
	BaseHeight = 144
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
