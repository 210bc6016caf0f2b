package scene

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexozer/upperenv"
	"github.com/ungerik/go3d/float64/vec3"
)

// ReadOBJ loads the first object of a Wavefront OBJ file. Only vertex
// positions, face loops and the object name are read; texture and normal
// references in face entries are ignored. Without an "o" line the object is
// named after the file.
func ReadOBJ(path string) (*Object, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &upperenv.OpError{
			Op:   "scene.read_obj",
			Kind: upperenv.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	obj, err := DecodeOBJ(f, name)
	if err != nil {
		return nil, &upperenv.OpError{
			Op:   "scene.read_obj",
			Kind: upperenv.KindInvalidInput,
			Path: path,
			Err:  err,
		}
	}
	return obj, nil
}

// DecodeOBJ parses OBJ text from r into an object called name, unless the
// text names it.
func DecodeOBJ(r io.Reader, name string) (*Object, error) {
	obj := NewObject(name)
	named := false

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "o":
			if named {
				return obj, nil
			}
			if len(fields) > 1 {
				obj.Name = strings.Join(fields[1:], " ")
			}
			named = true
		case "v":
			co, err := readVector(fields)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			obj.Points = append(obj.Points, co)
		case "f":
			face, err := readFace(fields, len(obj.Points))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			obj.Faces = append(obj.Faces, face)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return obj, nil
}

func readVector(fields []string) (vec3.T, error) {
	if len(fields) < 4 {
		return vec3.Zero, fmt.Errorf("vertex needs 3 coordinates, found %d", len(fields)-1)
	}

	var co vec3.T
	for i := range co {
		x, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return vec3.Zero, err
		}
		co[i] = x
	}
	return co, nil
}

func readFace(fields []string, numPoints int) ([]int, error) {
	if len(fields) < 4 {
		return nil, fmt.Errorf("face needs at least 3 vertices, found %d", len(fields)-1)
	}

	face := make([]int, 0, len(fields)-1)
	for _, field := range fields[1:] {
		ref := strings.SplitN(field, "/", 2)[0]
		i, err := strconv.Atoi(ref)
		if err != nil {
			return nil, err
		}

		// OBJ indices are 1-based; negative ones count back from the last vertex
		switch {
		case i > 0:
			i--
		case i < 0:
			i += numPoints
		default:
			return nil, errors.New("vertex index 0")
		}
		if i < 0 || i >= numPoints {
			return nil, fmt.Errorf("vertex index %s out of range", ref)
		}
		face = append(face, i)
	}
	return face, nil
}

// WriteOBJ writes obj as a single OBJ object. Points are written in world
// space.
func WriteOBJ(w io.Writer, obj *Object) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "o %s\n", obj.Name)
	for i := range obj.Points {
		co := obj.Matrix.MulVec3(&obj.Points[i])
		fmt.Fprintf(bw, "v %s %s %s\n", formatFloat(co[0]), formatFloat(co[1]), formatFloat(co[2]))
	}
	for _, face := range obj.Faces {
		bw.WriteString("f")
		for _, i := range face {
			fmt.Fprintf(bw, " %d", i+1)
		}
		bw.WriteString("\n")
	}

	return bw.Flush()
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
