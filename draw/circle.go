package draw

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// CirclePoints is the number of perimeter points a circle is tessellated into,
// regardless of its radius.
const CirclePoints = 40

func perimeterPoint(center mgl32.Vec2, r float32, i int) mgl32.Vec2 {
	angle := 2 * math.Pi * float64(i) / CirclePoints
	return mgl32.Vec2{
		center[0] + float32(math.Cos(angle))*r,
		center[1] + float32(math.Sin(angle))*r}
}

func appendPerimeter(pts []mgl32.Vec2, center mgl32.Vec2, r float32) []mgl32.Vec2 {
	for i := 0; i < CirclePoints; i++ {
		pts = append(pts, perimeterPoint(center, r, i))
	}
	// the point at angle 0 again, so that the shape is closed even if the
	// primitive does not close it by itself.
	return append(pts, perimeterPoint(center, r, 0))
}

// OutlineCircle returns the CirclePoints+1 points of a closed polygon
// approximating the circle. The first and last point are identical.
func OutlineCircle(center mgl32.Vec2, r float32) []mgl32.Vec2 {
	return appendPerimeter(make([]mgl32.Vec2, 0, CirclePoints+1), center, r)
}

// FilledCircle returns the CirclePoints+2 points of a triangle fan
// approximating the circle: the center, followed by the closed perimeter.
func FilledCircle(center mgl32.Vec2, r float32) []mgl32.Vec2 {
	pts := make([]mgl32.Vec2, 0, CirclePoints+2)
	return appendPerimeter(append(pts, center), center, r)
}
