package viewer

import (
	"image"
	"image/color"
	"math"
)

// screenVertex is a projected corner: pixel coordinates plus view depth
type screenVertex struct {
	x, y, z float64
}

// raster is an image with a depth buffer
type raster struct {
	img    *image.RGBA
	zbuf   []float64
	width  int
	height int
}

func newRaster(width, height int, background color.RGBA) *raster {
	r := &raster{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		zbuf:   make([]float64, width*height),
		width:  width,
		height: height,
	}
	for i := range r.zbuf {
		r.zbuf[i] = math.Inf(1)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r.img.SetRGBA(x, y, background)
		}
	}
	return r
}

// plot writes col at (x, y) if z is nearer than what is stored there
func (r *raster) plot(x, y int, z float64, col color.RGBA) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return
	}
	idx := y*r.width + x
	if z < r.zbuf[idx] {
		r.zbuf[idx] = z
		r.img.SetRGBA(x, y, col)
	}
}

// fillTriangle scan-converts a triangle with depth interpolation
func (r *raster) fillTriangle(a, b, c screenVertex, col color.RGBA) {
	// sort by y, top to bottom
	if a.y > b.y {
		a, b = b, a
	}
	if b.y > c.y {
		b, c = c, b
	}
	if a.y > b.y {
		a, b = b, a
	}

	edges := [3][2]screenVertex{{a, b}, {b, c}, {a, c}}

	yStart := int(math.Max(0, math.Ceil(a.y)))
	yEnd := int(math.Min(float64(r.height-1), c.y))
	for y := yStart; y <= yEnd; y++ {
		fy := float64(y)

		var span [2]screenVertex
		found := 0
		for _, e := range edges {
			p, q := e[0], e[1]
			if p.y == q.y || fy < p.y || fy > q.y || found == 2 {
				continue
			}
			t := (fy - p.y) / (q.y - p.y)
			span[found] = screenVertex{x: p.x + t*(q.x-p.x), z: p.z + t*(q.z-p.z)}
			found++
		}
		if found < 2 {
			continue
		}

		left, right := span[0], span[1]
		if left.x > right.x {
			left, right = right, left
		}
		xStart := int(math.Max(0, math.Ceil(left.x)))
		xEnd := int(math.Min(float64(r.width-1), right.x))
		for x := xStart; x <= xEnd; x++ {
			t := 0.0
			if right.x != left.x {
				t = (float64(x) - left.x) / (right.x - left.x)
			}
			r.plot(x, y, left.z+t*(right.z-left.z), col)
		}
	}
}

// drawLine draws a depth-tested line with Bresenham's algorithm. bias pulls
// the line towards the viewer so it wins against the faces it lies on.
func (r *raster) drawLine(a, b screenVertex, bias float64, col color.RGBA) {
	x1, y1 := int(math.Round(a.x)), int(math.Round(a.y))
	x2, y2 := int(math.Round(b.x)), int(math.Round(b.y))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	steps := max(dx, dy)

	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for i := 0; ; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		r.plot(x1, y1, (a.z+t*(b.z-a.z))*(1-bias), col)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
