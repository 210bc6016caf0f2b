package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexozer/upperenv"
	"github.com/ungerik/go3d/float64/vec3"
	"gopkg.in/yaml.v3"
)

type yamlPolygonSet struct {
	Name        string        `yaml:"name"`
	Collections []string      `yaml:"collections"`
	Translate   []float64     `yaml:"translate"`
	Polygons    [][][]float64 `yaml:"polygons"`
}

// ReadPolygonSet loads an object described in YAML as a list of polygons,
// each a list of [x, y, z] corners:
//
//	name: terrain
//	collections: [Scene]
//	translate: [0, 0, 10]
//	polygons:
//	  - [[0, 0, 0], [1, 0, 0], [1, 1, 0]]
//
// Corners are not shared between polygons; the builder merges identical ones.
func ReadPolygonSet(path string) (*Object, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &upperenv.OpError{
			Op:   "scene.read_polygon_set",
			Kind: upperenv.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto yamlPolygonSet
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return nil, &upperenv.OpError{
			Op:   "scene.read_polygon_set",
			Kind: upperenv.KindInvalidInput,
			Path: path,
			Err:  err,
		}
	}

	obj, err := mapPolygonSet(dto)
	if err != nil {
		return nil, &upperenv.OpError{
			Op:   "scene.read_polygon_set",
			Kind: upperenv.KindInvalidInput,
			Path: path,
			Err:  err,
		}
	}
	if obj.Name == "" {
		obj.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return obj, nil
}

func mapPolygonSet(dto yamlPolygonSet) (*Object, error) {
	obj := NewObject(dto.Name)
	obj.Collections = dto.Collections

	switch len(dto.Translate) {
	case 0:
	case 3:
		t := vec3.T{dto.Translate[0], dto.Translate[1], dto.Translate[2]}
		obj.Matrix.SetTranslation(&t)
	default:
		return nil, fmt.Errorf("translate needs 3 components, found %d", len(dto.Translate))
	}

	for i, poly := range dto.Polygons {
		face := make([]int, 0, len(poly))
		for j, corner := range poly {
			if len(corner) != 3 {
				return nil, fmt.Errorf("polygons[%d][%d]: corner needs 3 components, found %d", i, j, len(corner))
			}
			face = append(face, len(obj.Points))
			obj.Points = append(obj.Points, vec3.T{corner[0], corner[1], corner[2]})
		}
		obj.Faces = append(obj.Faces, face)
	}

	return obj, nil
}

// Load reads an object from an OBJ or YAML polygon-set file, chosen by
// extension.
func Load(path string) (*Object, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		return ReadOBJ(path)
	case ".yaml", ".yml":
		return ReadPolygonSet(path)
	}
	return nil, &upperenv.OpError{
		Op:   "scene.load",
		Kind: upperenv.KindInvalidInput,
		Path: path,
		Err:  fmt.Errorf("unsupported file type %q", filepath.Ext(path)),
	}
}
