package viewer

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/gosimplify/pkg/geometry"
)

// Camera orbits a target point at a fixed distance
type Camera struct {
	Target    geometry.Vector3
	Up        geometry.Vector3
	FOV       float64 // Field of view in radians
	Distance  float64
	RotationX float64 // Elevation above the XZ plane
	RotationY float64 // Azimuth around the Y axis
}

// NewCamera creates a camera looking at the center of a bounding box from
// far enough away to see all of it
func NewCamera(bbox geometry.BoundingBox) *Camera {
	size := bbox.Size()
	distance := math.Max(size.X, math.Max(size.Y, size.Z)) * 2.0
	if !(distance > 0) {
		distance = 1
	}

	return &Camera{
		Target:   bbox.Center(),
		Up:       geometry.NewVector3(0, 1, 0),
		FOV:      math.Pi / 4,
		Distance: distance,
	}
}

// Position returns the eye position for the current rotation
func (c *Camera) Position() geometry.Vector3 {
	x := c.Distance * math.Cos(c.RotationX) * math.Sin(c.RotationY)
	y := c.Distance * math.Sin(c.RotationX)
	z := c.Distance * math.Cos(c.RotationX) * math.Cos(c.RotationY)
	return c.Target.Add(geometry.NewVector3(x, y, z))
}

// Rotate changes the orbit angles. Elevation is clamped short of the poles.
func (c *Camera) Rotate(deltaX, deltaY float64) {
	maxAngle := math.Pi/2 - 0.1
	c.RotationX = math.Max(-maxAngle, math.Min(maxAngle, c.RotationX+deltaX))
	c.RotationY += deltaY
}

// Projector maps world points to screen pixels for one image size
type Projector struct {
	mvp           mgl64.Mat4
	width, height float64
}

// Projector builds the view-projection transform for a width x height image
func (c *Camera) Projector(width, height float64) Projector {
	near := c.Distance * 1e-3
	far := c.Distance * 10
	view := mgl64.LookAtV(c.Position().Vec3(), c.Target.Vec3(), c.Up.Vec3())
	proj := mgl64.Perspective(c.FOV, width/height, near, far)
	return Projector{mvp: proj.Mul4(view), width: width, height: height}
}

// Project returns screen coordinates and the view depth of point. Points
// behind the camera report ok=false.
func (p Projector) Project(point geometry.Vector3) (x, y, depth float64, ok bool) {
	clip := p.mvp.Mul4x1(point.Vec3().Vec4(1))
	w := clip.W()
	if w <= 0 {
		return 0, 0, 0, false
	}
	x = (clip.X()/w + 1) / 2 * p.width
	y = (1 - clip.Y()/w) / 2 * p.height
	return x, y, w, true
}
