// Package upperenv turns the polygons of an upper envelope into a clean
// polygon mesh. Polygons are merged on identical corners, then the mesh is
// cleaned in three fixed stages: degenerate geometry is dissolved, edges
// shared by more than two faces are split away, and loose edges and
// vertices are deleted.
package upperenv
