package count

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spanbdd/bead"
)

// independentSetsBDD is the 16-node fixture hand-linearised from the
// independent-sets BDD on Knuth p.76, known to have exactly 18 solutions.
// It is built directly, independent of package simpath, so a Total bug
// cannot hide behind a matching builder bug.
func independentSetsBDD() *bead.BDD {
	nodes := []bead.Node{
		{Var: 6, Lo: 0, Hi: 0},
		{Var: 6, Lo: 1, Hi: 1},
		{Var: 5, Lo: 1, Hi: 0},
		{Var: 4, Lo: 2, Hi: 0},
		{Var: 4, Lo: 1, Hi: 0},
		{Var: 4, Lo: 1, Hi: 2},
		{Var: 3, Lo: 2, Hi: 0},
		{Var: 3, Lo: 2, Hi: 3},
		{Var: 3, Lo: 5, Hi: 0},
		{Var: 3, Lo: 5, Hi: 4},
		{Var: 2, Lo: 7, Hi: 6},
		{Var: 2, Lo: 9, Hi: 0},
		{Var: 2, Lo: 9, Hi: 8},
		{Var: 1, Lo: 10, Hi: 0},
		{Var: 1, Lo: 12, Hi: 11},
		{Var: 0, Lo: 14, Hi: 13},
	}
	return bead.New(6, nodes, 15)
}

func TestTotal_IndependentSets(t *testing.T) {
	b := independentSetsBDD()
	require.NoError(t, b.Validate(), "fixture must satisfy bead's own invariants")

	got := Total(b)
	require.Equal(t, big.NewInt(18), got)
}

func TestTotal_Trivial(t *testing.T) {
	require.Equal(t, big.NewInt(1), Total(bead.Trivial(true)))
	require.Equal(t, big.NewInt(0), Total(bead.Trivial(false)))
}

func TestTotal_SingleEdgeHasOneSolution(t *testing.T) {
	// the single-edge BDD from spec scenario 2: one satisfying assignment
	// (take the edge), none without it.
	b := bead.New(1, []bead.Node{
		{Var: 1, Lo: 0, Hi: 0},
		{Var: 1, Lo: 1, Hi: 1},
		{Var: 0, Lo: 0, Hi: 1},
	}, 2)
	require.Equal(t, big.NewInt(1), Total(b))
}

func TestAllCounts_IndexedBySinks(t *testing.T) {
	b := independentSetsBDD()
	c := AllCounts(b)
	require.Len(t, c, b.Size())
	require.Equal(t, big.NewInt(0), c[bead.False])
	require.Equal(t, big.NewInt(1), c[bead.True])
}
