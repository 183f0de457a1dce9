package unionfind

// DisjointSet is an array-backed union-find forest over N singletons
// [0, N). Use New to construct; the zero value is not usable.
//
// Callers must pass pre-Find'd arguments to Union — the contract is
// deliberately narrow to match the MST adaptive-merge loop in package
// segment, which always resolves roots before deciding whether to merge.
type DisjointSet struct {
	parent  []int
	size    []int
	surface []int
	roots   int
}

// New builds a DisjointSet of n singleton components, each its own root
// with surface 1.
// Complexity: O(n).
func New(n int) *DisjointSet {
	ds := &DisjointSet{
		parent:  make([]int, n),
		size:    make([]int, n),
		surface: make([]int, n),
		roots:   n,
	}
	for i := 0; i < n; i++ {
		ds.parent[i] = i
		ds.size[i] = 1
		ds.surface[i] = 1
	}

	return ds
}

// Find returns the canonical root of v, applying path halving so that
// repeated calls amortize to inverse-Ackermann complexity.
// Complexity: O(alpha(N)) amortized.
func (ds *DisjointSet) Find(v int) int {
	for ds.parent[v] != v {
		ds.parent[v] = ds.parent[ds.parent[v]] // path halving
		v = ds.parent[v]
	}

	return v
}

// Union merges the components rooted at r1 and r2 (both must already be
// roots — i.e. the result of Find) by attaching the smaller-size tree
// under the larger, and returns the surviving root. If r1 == r2, Union
// is a no-op and returns r1.
// Complexity: O(1).
func (ds *DisjointSet) Union(r1, r2 int) int {
	if r1 == r2 {
		return r1
	}
	if ds.size[r1] < ds.size[r2] {
		r1, r2 = r2, r1
	}
	ds.parent[r2] = r1
	ds.size[r1] += ds.size[r2]
	ds.surface[r1] += ds.surface[r2]
	ds.roots--

	return r1
}

// Surface returns the voxel count of the component rooted at r. r must
// be a root (the result of Find); the value is meaningless otherwise.
// Complexity: O(1).
func (ds *DisjointSet) Surface(r int) int {
	return ds.surface[r]
}

// CountRoots returns the number of slots that are currently their own
// parent, i.e. the number of distinct components.
// Complexity: O(1).
func (ds *DisjointSet) CountRoots() int {
	return ds.roots
}

// N returns the total number of voxels in the forest.
func (ds *DisjointSet) N() int {
	return len(ds.parent)
}
