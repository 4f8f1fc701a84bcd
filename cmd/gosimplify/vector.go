package main

import (
	"fmt"

	"github.com/philipparndt/gosimplify/pkg/geometry"
)

// toVector converts an x,y,z flag value
func toVector(name string, values []float64) (geometry.Vector3, error) {
	if len(values) != 3 {
		return geometry.Vector3{}, fmt.Errorf("--%s needs 3 comma separated coordinates, got %d", name, len(values))
	}
	v := geometry.NewVector3(values[0], values[1], values[2])
	if !v.IsFinite() {
		return geometry.Vector3{}, fmt.Errorf("--%s must be finite, got %v", name, values)
	}
	return v, nil
}

// triangleFlags reads the corner flags shared by closest and probe
func triangleFlags(a, b, c []float64) (geometry.Triangle, error) {
	va, err := toVector("a", a)
	if err != nil {
		return geometry.Triangle{}, err
	}
	vb, err := toVector("b", b)
	if err != nil {
		return geometry.Triangle{}, err
	}
	vc, err := toVector("c", c)
	if err != nil {
		return geometry.Triangle{}, err
	}
	return geometry.NewTriangle(va, vb, vc), nil
}
