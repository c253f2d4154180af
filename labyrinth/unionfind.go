package labyrinth

// unionFind tracks a partition of cell ids into disjoint sets, with path
// compression and union by size. Cell ids are dense (0..n-1) so parents live
// in a flat array rather than a map.
type unionFind struct {
	parent []int
	size   []int
}

// newUnionFind creates n singleton sets.
func newUnionFind(n int) *unionFind {
	uf := &unionFind{
		parent: make([]int, n),
		size:   make([]int, n),
	}
	for i := range uf.parent {
		uf.parent[i] = i
		uf.size[i] = 1
	}
	return uf
}

// find returns the root of the set containing id.
func (uf *unionFind) find(id int) int {
	for uf.parent[id] != id {
		uf.parent[id] = uf.parent[uf.parent[id]] // path compression
		id = uf.parent[id]
	}
	return id
}

// union merges the sets containing a and b. Returns false if they were
// already in the same set.
func (uf *unionFind) union(a, b int) bool {
	rootA := uf.find(a)
	rootB := uf.find(b)
	if rootA == rootB {
		return false
	}
	if uf.size[rootA] < uf.size[rootB] {
		rootA, rootB = rootB, rootA
	}
	uf.parent[rootB] = rootA
	uf.size[rootA] += uf.size[rootB]
	return true
}

// connected reports whether a and b are in the same set.
func (uf *unionFind) connected(a, b int) bool {
	return uf.find(a) == uf.find(b)
}
