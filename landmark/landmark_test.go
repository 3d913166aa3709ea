package landmark_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routeweaver/pathcore/graph"
	"github.com/routeweaver/pathcore/landmark"
	"github.com/routeweaver/pathcore/search"
)

func buildChain(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	for i := 0; i < 6; i++ {
		g.AddNode(i)
	}
	for i := 0; i < 5; i++ {
		_, err := g.AddEdge(i, i+1, 1.0)
		require.NoError(t, err)
	}
	return g
}

func TestRandomLandmarksInvalidCount(t *testing.T) {
	require := require.New(t)
	g := buildChain(t)

	_, err := landmark.Random{}.Landmarks(g, 0)
	require.ErrorIs(err, landmark.ErrInvalidCount)

	_, err = landmark.Random{}.Landmarks(g, 100)
	require.ErrorIs(err, landmark.ErrTooFew)
}

func TestRandomLandmarksReturnsKDistinct(t *testing.T) {
	require := require.New(t)
	g := buildChain(t)

	got, err := landmark.Random{Seed: 7}.Landmarks(g, 3)
	require.NoError(err)
	require.Len(got, 3)

	seen := map[int]bool{}
	for _, id := range got {
		require.False(seen[id], "landmarks must be distinct")
		seen[id] = true
	}
}

// buildAsymmetricChain is the literal greedy-farthest seeding scenario
// from spec.md §8: 0<->1 costs 1, 1<->2 costs 1, 2<->3 costs 10. Node 3
// sits behind the one expensive edge, so it is farther from every other
// node than any of 0, 1, 2 are from each other.
func buildAsymmetricChain(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	for i := 0; i < 4; i++ {
		g.AddNode(i)
	}
	weights := []float64{1, 1, 10}
	for i, w := range weights {
		_, err := g.AddEdge(i, i+1, w)
		require.NoError(t, err)
		_, err = g.AddEdge(i+1, i, w)
		require.NoError(t, err)
	}
	return g
}

// TestGreedyFarthestSelectsExtremum checks the spec.md §8 scenario: on
// the asymmetric-weight chain, landmarks(2) must include node 3 no
// matter which node greedy-farthest's random first pick lands on, since
// 3 is strictly farther from every other node than they are from each
// other.
func TestGreedyFarthestSelectsExtremum(t *testing.T) {
	require := require.New(t)
	g := buildAsymmetricChain(t)

	for seed := int64(1); seed <= 4; seed++ {
		got, err := landmark.GreedyFarthest{Seed: seed}.Landmarks(g, 2)
		require.NoError(err)
		require.Len(got, 2)

		found := false
		for _, id := range got {
			if id == 3 {
				found = true
			}
		}
		require.True(found, "landmarks(2) must include node 3 for seed %d, got %v", seed, got)
	}
}

func TestGreedyFarthestReturnsKDistinct(t *testing.T) {
	require := require.New(t)
	g := buildChain(t)

	got, err := landmark.GreedyFarthest{Seed: 3}.Landmarks(g, 3)
	require.NoError(err)
	require.Len(got, 3)

	seen := map[int]bool{}
	for _, id := range got {
		require.False(seen[id])
		seen[id] = true
	}
}

// TestALTLowerBoundNeverExceedsTrueCost checks invariant 6: the ALT
// lower bound is <= the true shortest-path cost for every reachable
// (v, t) pair.
func TestALTLowerBoundNeverExceedsTrueCost(t *testing.T) {
	require := require.New(t)
	g := buildChain(t)

	alt, err := landmark.Build(g, landmark.GreedyFarthest{Seed: 1}, 2)
	require.NoError(err)

	d := search.NewDijkstra(g)
	for s := 0; s < 6; s++ {
		for dst := 0; dst < 6; dst++ {
			trueCost, ok := d.Cost(s, dst)
			if !ok {
				continue
			}
			bound := alt.LowerBound(s, dst)
			require.LessOrEqual(bound, trueCost+1e-9)
		}
	}
}

// TestAStarWithALTMatchesDijkstra checks invariant 3.
func TestAStarWithALTMatchesDijkstra(t *testing.T) {
	require := require.New(t)
	g := buildChain(t)

	alt, err := landmark.Build(g, landmark.Random{Seed: 2}, 2)
	require.NoError(err)

	dCost, _ := search.NewDijkstra(g).Cost(0, 5)
	aCost, ok := search.NewAStar(g, alt).Cost(0, 5)
	require.True(ok)
	require.Equal(dCost, aCost)
}
