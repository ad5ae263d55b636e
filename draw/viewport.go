package draw

import "github.com/go-gl/mathgl/mgl32"

// Viewport describes the logical coordinate window shown in a window of
// Width x Height pixels.
type Viewport struct {
	Left, Right, Bottom, Top float32
	Width, Height            int32
}

// ViewportFor calculates the viewport for a window of the given size.
// The shorter axis always spans [-1, 1]; the longer axis is extended so that
// shapes keep their aspect ratio. Sizes below 1 are treated as 1.
func ViewportFor(width, height int32) Viewport {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	ret := Viewport{Width: width, Height: height}
	aspect := float32(width) / float32(height)
	if aspect < 1 {
		ret.Left, ret.Right = -1, 1
		ret.Bottom, ret.Top = -1/aspect, 1/aspect
	} else {
		ret.Left, ret.Right = -aspect, aspect
		ret.Bottom, ret.Top = -1, 1
	}
	return ret
}

// Projection returns the orthographic projection of the logical window
// (near plane -1, far plane 1).
func (v Viewport) Projection() mgl32.Mat4 {
	return mgl32.Ortho2D(v.Left, v.Right, v.Bottom, v.Top)
}

// PixelRect returns the corners of the pixel area the logical window is
// mapped to.
func (v Viewport) PixelRect() (x0, y0, x1, y1 int32) {
	return 0, 0, v.Width - 1, v.Height - 1
}
