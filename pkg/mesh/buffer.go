package mesh

import (
	"errors"
	"fmt"

	"github.com/philipparndt/gosimplify/pkg/geometry"
)

const floatSize = 4

// ErrStride is returned for byte strides that cannot address float32 positions.
var ErrStride = errors.New("invalid position stride")

// PositionBuffer is a read-only view of positions stored in a caller-owned
// float32 slice. Vertex i starts at float offset i*Stride.
type PositionBuffer struct {
	data   []float32
	stride int
	count  int
}

// NewPositionBuffer wraps data holding count positions strideBytes apart. The
// stride must be a multiple of 4 bytes and cover at least x, y and z.
func NewPositionBuffer(data []float32, strideBytes, count int) (PositionBuffer, error) {
	if strideBytes < 3*floatSize || strideBytes%floatSize != 0 {
		return PositionBuffer{}, fmt.Errorf("%w: %d bytes", ErrStride, strideBytes)
	}
	if count < 0 {
		return PositionBuffer{}, fmt.Errorf("negative vertex count %d", count)
	}
	stride := strideBytes / floatSize
	if count > 0 {
		if need := (count-1)*stride + 3; len(data) < need {
			return PositionBuffer{}, fmt.Errorf("position buffer holds %d floats, %d vertices need %d", len(data), count, need)
		}
	}
	return PositionBuffer{data: data, stride: stride, count: count}, nil
}

// Len returns the number of positions
func (b PositionBuffer) Len() int {
	return b.count
}

// At returns position i
func (b PositionBuffer) At(i int) geometry.Vector3 {
	o := i * b.stride
	return geometry.NewVector3(float64(b.data[o]), float64(b.data[o+1]), float64(b.data[o+2]))
}

// Mesh copies the positions into an indexed mesh using the given indices
func (b PositionBuffer) Mesh(name string, indices []uint32) *Mesh {
	m := New(name)
	m.Positions = make([]geometry.Vector3, b.count)
	for i := range m.Positions {
		m.Positions[i] = b.At(i)
	}
	m.Indices = indices
	return m
}
