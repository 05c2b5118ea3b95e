package matching_test

import (
	"math/rand"

	"github.com/katalvlaran/lvflow/bipartite"
)

// labEdges is the 35-edge undirected graph over vertices 2..16.
var labEdges = [][2]int{
	{4, 13}, {2, 8}, {13, 16}, {4, 12}, {8, 13}, {7, 9}, {11, 14},
	{6, 12}, {14, 16}, {3, 13}, {10, 14}, {2, 6}, {7, 15},
	{6, 14}, {5, 10}, {3, 14}, {9, 13}, {5, 16}, {2, 10}, {4, 5},
	{2, 3}, {2, 16}, {10, 13}, {3, 7}, {2, 4}, {5, 8}, {7, 16},
	{4, 14}, {3, 12}, {6, 13}, {7, 11}, {5, 15}, {5, 11},
	{13, 15}, {9, 12},
}

func labGraph() bipartite.Graph {
	edges := make([]bipartite.Edge, len(labEdges))
	for i, e := range labEdges {
		edges[i] = bipartite.Edge{U: e[0], V: e[1]}
	}

	return bipartite.NewGraph(edges...)
}

// randomBipartite draws Left 0..n1-1 and Right n1..n1+n2-1 with edge probability p.
func randomBipartite(n1, n2 int, p float64, seed int64) (bipartite.Graph, bipartite.Partition) {
	rng := rand.New(rand.NewSource(seed))
	var part bipartite.Partition
	for i := 0; i < n1; i++ {
		part.Left = append(part.Left, i)
	}
	for j := 0; j < n2; j++ {
		part.Right = append(part.Right, n1+j)
	}

	var edges []bipartite.Edge
	for _, u := range part.Left {
		for _, v := range part.Right {
			if rng.Float64() < p {
				edges = append(edges, bipartite.Edge{U: u, V: v})
			}
		}
	}

	return bipartite.NewGraph(edges...), part
}
