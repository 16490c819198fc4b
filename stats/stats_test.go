package stats_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treeline-bio/phylo/core"
	"github.com/treeline-bio/phylo/stats"
)

// link builds a named, optionally weighted node under parent inside tr.
func link(t *testing.T, tr *core.Tree, parent *core.Node, name string, length float64, weighted bool) *core.Node {
	t.Helper()

	n := core.NewNode()
	n.SetName(name)
	require.NoError(t, tr.Insert(n))
	if parent != nil {
		parent.SetChild(n)
	}
	if weighted {
		require.NoError(t, n.SetLength(length))
	}

	return n
}

// buildWeighted constructs ((A:1,B:2)AB:3,C:4)root.
func buildWeighted(t *testing.T) (*core.Tree, map[string]*core.Node) {
	t.Helper()

	tr := core.NewTree()
	root := link(t, tr, nil, "root", 0, false)
	ab := link(t, tr, root, "AB", 3, true)
	return tr, map[string]*core.Node{
		"root": root,
		"AB":   ab,
		"A":    link(t, tr, ab, "A", 1, true),
		"B":    link(t, tr, ab, "B", 2, true),
		"C":    link(t, tr, root, "C", 4, true),
	}
}

func TestPathToRoot(t *testing.T) {
	_, nodes := buildWeighted(t)

	d, err := stats.PathToRoot(nodes["A"])
	require.NoError(t, err)
	assert.Equal(t, 4.0, d)

	d, err = stats.PathToRoot(nodes["root"])
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)

	_, err = stats.PathToRoot(nil)
	assert.ErrorIs(t, err, core.ErrBadArgs)
}

func TestNodesToRoot(t *testing.T) {
	_, nodes := buildWeighted(t)

	c, err := stats.NodesToRoot(nodes["B"])
	require.NoError(t, err)
	assert.Equal(t, 2, c)

	c, err = stats.NodesToRoot(nodes["root"])
	require.NoError(t, err)
	assert.Equal(t, 0, c)
}

func TestMRCA(t *testing.T) {
	_, nodes := buildWeighted(t)

	m, err := stats.MRCA(nodes["A"], nodes["B"])
	require.NoError(t, err)
	assert.Same(t, nodes["AB"], m)

	m, err = stats.MRCA(nodes["A"], nodes["C"])
	require.NoError(t, err)
	assert.Same(t, nodes["root"], m)

	m, err = stats.MRCA(nodes["A"], nodes["A"])
	require.NoError(t, err)
	assert.Same(t, nodes["A"], m, "a node is its own MRCA with itself")

	m, err = stats.MRCA(nodes["AB"], nodes["B"])
	require.NoError(t, err)
	assert.Same(t, nodes["AB"], m, "an ancestor is the MRCA with its descendant")

	stranger := core.NewNode()
	_, err = stats.MRCA(nodes["A"], stranger)
	assert.ErrorIs(t, err, core.ErrObjectMismatch)
}

func TestPatristicDistance(t *testing.T) {
	_, nodes := buildWeighted(t)

	for _, n := range nodes {
		d, err := stats.PatristicDistance(n, n)
		require.NoError(t, err)
		assert.Equal(t, 0.0, d, "distance of %q to itself", n.Name())
	}

	d, err := stats.PatristicDistance(nodes["A"], nodes["B"])
	require.NoError(t, err)
	assert.Equal(t, 3.0, d)

	d, err = stats.PatristicDistance(nodes["A"], nodes["C"])
	require.NoError(t, err)
	assert.Equal(t, 8.0, d)

	// Symmetry.
	rev, err := stats.PatristicDistance(nodes["C"], nodes["A"])
	require.NoError(t, err)
	assert.Equal(t, d, rev)
}

func TestNodalDistance(t *testing.T) {
	_, nodes := buildWeighted(t)

	pairs := [][2]string{{"A", "B"}, {"A", "C"}, {"B", "C"}, {"AB", "C"}}
	for _, pair := range pairs {
		ab, err := stats.NodalDistance(nodes[pair[0]], nodes[pair[1]])
		require.NoError(t, err)
		ba, err := stats.NodalDistance(nodes[pair[1]], nodes[pair[0]])
		require.NoError(t, err)
		assert.Equal(t, ab, ba, "nodal distance %v must be symmetric", pair)
	}

	d, err := stats.NodalDistance(nodes["A"], nodes["C"])
	require.NoError(t, err)
	assert.Equal(t, 3, d)
}

func TestPairwisePatristicSum(t *testing.T) {
	tr, _ := buildWeighted(t)

	total, err := stats.PairwisePatristicSum(tr)
	require.NoError(t, err)
	assert.Equal(t, 20.0, total) // 3 + 8 + 9
}

// buildBalanced8 constructs (((A,B),(C,D)),((E,F),(G,H))) without lengths.
func buildBalanced8(t *testing.T) *core.Tree {
	t.Helper()

	tr := core.NewTree()
	root := link(t, tr, nil, "root", 0, false)
	left := link(t, tr, root, "left", 0, false)
	right := link(t, tr, root, "right", 0, false)
	names := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	for i, quad := range []*core.Node{left, left, right, right} {
		pair := link(t, tr, quad, "", 0, false)
		link(t, tr, pair, names[2*i], 0, false)
		link(t, tr, pair, names[2*i+1], 0, false)
	}

	return tr
}

func TestColless_BalancedIsZero(t *testing.T) {
	tr := buildBalanced8(t)

	v, err := stats.Colless(tr)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

func TestColless_ThreeTips(t *testing.T) {
	tr, _ := buildWeighted(t)

	v, err := stats.Colless(tr)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestColless_PectinateIsOne(t *testing.T) {
	// (((A,B),C),D)
	tr := core.NewTree()
	root := link(t, tr, nil, "root", 0, false)
	abc := link(t, tr, root, "abc", 0, false)
	link(t, tr, root, "D", 0, false)
	ab := link(t, tr, abc, "ab", 0, false)
	link(t, tr, abc, "C", 0, false)
	link(t, tr, ab, "A", 0, false)
	link(t, tr, ab, "B", 0, false)

	v, err := stats.Colless(tr)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestColless_NonBinaryRejected(t *testing.T) {
	tr := core.NewTree()
	root := link(t, tr, nil, "root", 0, false)
	for _, name := range []string{"A", "B", "C"} {
		link(t, tr, root, name, 0, false)
	}

	_, err := stats.Colless(tr)
	assert.ErrorIs(t, err, core.ErrObjectMismatch)
}

func TestColless_UnderMinimumIsNaN(t *testing.T) {
	tr := core.NewTree()
	root := link(t, tr, nil, "root", 0, false)
	link(t, tr, root, "A", 0, false)
	link(t, tr, root, "B", 0, false)

	v, err := stats.Colless(tr)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))
}

func TestI2(t *testing.T) {
	tr, _ := buildWeighted(t)

	v, err := stats.I2(tr)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	balanced := buildBalanced8(t)
	v, err = stats.I2(balanced)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

func TestGamma(t *testing.T) {
	// ((A:1,B:1)ab:1,C:2): event times 0 and 1, total length 5.
	tr := core.NewTree()
	root := link(t, tr, nil, "root", 0, false)
	ab := link(t, tr, root, "ab", 1, true)
	link(t, tr, ab, "A", 1, true)
	link(t, tr, ab, "B", 1, true)
	link(t, tr, root, "C", 2, true)

	v, err := stats.Gamma(tr)
	require.NoError(t, err)
	assert.InDelta(t, -0.34641016, v, 1e-6)
}

func TestGamma_NonBinaryRejected(t *testing.T) {
	tr := core.NewTree()
	root := link(t, tr, nil, "root", 0, false)
	for _, name := range []string{"A", "B", "C"} {
		link(t, tr, root, name, 1, true)
	}

	_, err := stats.Gamma(tr)
	assert.ErrorIs(t, err, core.ErrObjectMismatch)
}

func TestFialaStemminess(t *testing.T) {
	tr, _ := buildWeighted(t)

	v, err := stats.FialaStemminess(tr)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, v, 1e-12) // 3 / (3 + 1 + 2)
}

func TestRohlfStemminess(t *testing.T) {
	// Ultrametric ((A:1,B:1)ab:1,C:2).
	tr := core.NewTree()
	root := link(t, tr, nil, "root", 0, false)
	ab := link(t, tr, root, "ab", 1, true)
	link(t, tr, ab, "A", 1, true)
	link(t, tr, ab, "B", 1, true)
	link(t, tr, root, "C", 2, true)

	v, err := stats.RohlfStemminess(tr)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, v, 1e-12) // ab's length over root's height

	// Non-ultrametric trees are rejected.
	skewed, _ := buildWeighted(t)
	_, err = stats.RohlfStemminess(skewed)
	assert.ErrorIs(t, err, core.ErrObjectMismatch)
}

// buildThreeTip builds ((A,B)ab,C) with the given length for ab.
func buildThreeTip(t *testing.T, abLen float64, tipOrder [3]string) *core.Tree {
	t.Helper()

	tr := core.NewTree()
	root := link(t, tr, nil, "root", 0, false)
	ab := link(t, tr, root, "ab", abLen, true)
	link(t, tr, ab, tipOrder[0], 1, true)
	link(t, tr, ab, tipOrder[1], 1, true)
	link(t, tr, root, tipOrder[2], 1, true)

	return tr
}

func TestSplitLengths_ChildOrderIndependent(t *testing.T) {
	a := buildThreeTip(t, 2, [3]string{"A", "B", "C"})
	b := buildThreeTip(t, 2, [3]string{"B", "A", "C"})

	sa, err := stats.SplitLengths(a)
	require.NoError(t, err)
	sb, err := stats.SplitLengths(b)
	require.NoError(t, err)
	assert.Equal(t, sa, sb)
	assert.Len(t, sa, 1, "one non-trivial split in a 3-tip tree")
}

func TestBranchScoreAndDistance(t *testing.T) {
	a := buildThreeTip(t, 2, [3]string{"A", "B", "C"})
	b := buildThreeTip(t, 5, [3]string{"A", "B", "C"})

	score, err := stats.BranchScore(a, b)
	require.NoError(t, err)
	assert.Equal(t, 9.0, score)

	dist, err := stats.BranchDistance(a, b)
	require.NoError(t, err)
	assert.Equal(t, 3.0, dist)

	norm, err := stats.BranchDistance(a, b, stats.WithNormalized())
	require.NoError(t, err)
	assert.Equal(t, 3.0, norm, "one compared split")
}

func TestSymmetricDifference(t *testing.T) {
	a := buildThreeTip(t, 1, [3]string{"A", "B", "C"})
	same := buildThreeTip(t, 9, [3]string{"B", "A", "C"})
	other := buildThreeTip(t, 1, [3]string{"A", "C", "B"})

	d, err := stats.SymmetricDifference(a, same)
	require.NoError(t, err)
	assert.Equal(t, 0, d, "lengths do not affect the topological distance")

	d, err = stats.SymmetricDifference(a, other)
	require.NoError(t, err)
	assert.Equal(t, 2, d)

	// A split exclusive to one tree contributes its full squared length.
	score, err := stats.BranchScore(a, other)
	require.NoError(t, err)
	assert.Equal(t, 2.0, score)
}
