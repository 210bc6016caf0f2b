package upperenv

// Interner assigns dense indices to coordinates by exact equality, in
// first-seen order. No tolerance is applied; near-coincident points are left
// for the cleanup stages.
type Interner struct {
	index  map[Coord]int
	coords []Coord
}

func NewInterner() *Interner {
	return &Interner{
		index:  make(map[Coord]int),
		coords: make([]Coord, 0),
	}
}

func (this *Interner) Intern(co Coord) int {
	if i, ok := this.index[co]; ok {
		return i
	}

	i := len(this.coords)
	this.index[co] = i
	this.coords = append(this.coords, co)
	return i
}

// InternRing interns every point of a ring and returns the index list.
func (this *Interner) InternRing(ring []Coord) []int {
	indices := make([]int, len(ring))
	for i, co := range ring {
		indices[i] = this.Intern(co)
	}
	return indices
}

func (this *Interner) Len() int {
	return len(this.coords)
}

// Coords returns the vertex table, indexed by the values Intern returned.
func (this *Interner) Coords() []Coord {
	return this.coords
}
