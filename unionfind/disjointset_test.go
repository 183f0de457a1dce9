package unionfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voxelgraph/vgseg/unionfind"
)

func TestNew_Singletons(t *testing.T) {
	ds := unionfind.New(5)
	assert.Equal(t, 5, ds.CountRoots())
	for i := 0; i < 5; i++ {
		assert.Equal(t, i, ds.Find(i))
		assert.Equal(t, 1, ds.Surface(i))
	}
}

func TestFind_Idempotent(t *testing.T) {
	ds := unionfind.New(4)
	ds.Union(ds.Find(0), ds.Find(1))
	ds.Union(ds.Find(1), ds.Find(2))

	r := ds.Find(2)
	assert.Equal(t, r, ds.Find(r))
}

func TestUnion_MergesAndTracksSurface(t *testing.T) {
	ds := unionfind.New(4)
	r := ds.Union(ds.Find(0), ds.Find(1))
	assert.Equal(t, ds.Find(0), ds.Find(1))
	assert.Equal(t, 2, ds.Surface(r))
	assert.Equal(t, 3, ds.CountRoots())

	r2 := ds.Union(ds.Find(r), ds.Find(2))
	assert.Equal(t, 3, ds.Surface(r2))
	assert.Equal(t, 2, ds.CountRoots())
}

func TestUnion_SameRootIsNoop(t *testing.T) {
	ds := unionfind.New(3)
	ds.Union(0, 1)
	before := ds.CountRoots()
	r := ds.Find(0)
	ds.Union(r, r)
	assert.Equal(t, before, ds.CountRoots())
}

func TestEquivalencePreserving(t *testing.T) {
	ds := unionfind.New(6)
	ds.Union(ds.Find(0), ds.Find(1))
	ds.Union(ds.Find(2), ds.Find(3))
	ds.Union(ds.Find(1), ds.Find(3))

	assert.Equal(t, ds.Find(0), ds.Find(2))
	assert.NotEqual(t, ds.Find(0), ds.Find(4))
	assert.NotEqual(t, ds.Find(4), ds.Find(5))
}

func BenchmarkUnionFind_Chain(b *testing.B) {
	for n := 0; n < b.N; n++ {
		ds := unionfind.New(1000)
		for i := 0; i < 999; i++ {
			ds.Union(ds.Find(i), ds.Find(i+1))
		}
	}
}
