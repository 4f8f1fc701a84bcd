package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/gosimplify/pkg/geometry"
)

const (
	binaryHeaderSize = 80
	binaryFacetSize  = 50
)

// Parse reads an STL file and returns a Model
// It automatically detects whether the file is ASCII or binary format
func Parse(filename string) (*Model, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Read(file)
}

// Read parses STL data from a seekable source.
// Binary files whose header happens to start with "solid" are recognized by
// their exact size.
func Read(r io.ReadSeeker) (*Model, error) {
	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to determine size: %w", err)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to reset file pointer: %w", err)
	}

	header := make([]byte, binaryHeaderSize+4)
	n, err := io.ReadFull(r, header)
	if err != nil && err != io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("failed to read file header: %w", err)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to reset file pointer: %w", err)
	}

	if n >= 5 && bytes.HasPrefix(header, []byte("solid")) && !looksBinary(header[:n], size) {
		return parseASCII(r)
	}
	return parseBinary(r)
}

func looksBinary(header []byte, size int64) bool {
	if len(header) < binaryHeaderSize+4 {
		return false
	}
	count := binary.LittleEndian.Uint32(header[binaryHeaderSize:])
	return size == binaryHeaderSize+4+int64(count)*binaryFacetSize
}

// parseASCII parses an ASCII STL file
func parseASCII(reader io.Reader) (*Model, error) {
	scanner := bufio.NewScanner(reader)
	model := NewModel("")

	var currentNormal geometry.Vector3
	var vertices []geometry.Vector3
	lineNo := 0

	parseVector := func(fields []string) (geometry.Vector3, error) {
		var c [3]float64
		for i := range c {
			v, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				return geometry.Vector3{}, fmt.Errorf("line %d: invalid number %q", lineNo, fields[i])
			}
			c[i] = v
		}
		return geometry.NewVector3(c[0], c[1], c[2]), nil
	}

	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				model.Name = strings.Join(fields[1:], " ")
			}

		case "facet":
			if len(fields) >= 5 && fields[1] == "normal" {
				n, err := parseVector(fields[2:5])
				if err != nil {
					return nil, err
				}
				currentNormal = n
			}

		case "vertex":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates", lineNo)
			}
			v, err := parseVector(fields[1:4])
			if err != nil {
				return nil, err
			}
			vertices = append(vertices, v)

		case "endfacet":
			if len(vertices) != 3 {
				return nil, fmt.Errorf("line %d: facet with %d vertices", lineNo, len(vertices))
			}
			model.AddFacet(currentNormal, geometry.NewTriangle(vertices[0], vertices[1], vertices[2]))
			vertices = vertices[:0]
			currentNormal = geometry.Vector3{}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}

	return model, nil
}

// binaryFacet mirrors the 50-byte little-endian facet record
type binaryFacet struct {
	Normal    [3]float32
	Vertices  [3][3]float32
	Attribute uint16
}

// parseBinary parses a binary STL file
func parseBinary(reader io.Reader) (*Model, error) {
	model := NewModel("")

	header := make([]byte, binaryHeaderSize)
	if _, err := io.ReadFull(reader, header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	model.Name = strings.TrimSpace(string(bytes.TrimRight(header, "\x00")))

	var triangleCount uint32
	if err := binary.Read(reader, binary.LittleEndian, &triangleCount); err != nil {
		return nil, fmt.Errorf("failed to read triangle count: %w", err)
	}

	buffered := bufio.NewReader(reader)
	toVector := func(v [3]float32) geometry.Vector3 {
		return geometry.NewVector3(float64(v[0]), float64(v[1]), float64(v[2]))
	}

	for i := uint32(0); i < triangleCount; i++ {
		var f binaryFacet
		if err := binary.Read(buffered, binary.LittleEndian, &f); err != nil {
			return nil, fmt.Errorf("failed to read triangle %d: %w", i, err)
		}
		model.AddFacet(toVector(f.Normal), geometry.NewTriangle(
			toVector(f.Vertices[0]),
			toVector(f.Vertices[1]),
			toVector(f.Vertices[2]),
		))
	}

	return model, nil
}
