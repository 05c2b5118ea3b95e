package flow_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvflow/network"
)

// Reference network: A..I = 0..8, source A, sink C.
// D→D and H→H are self-loops and never carry flow.
const (
	labSource = 0
	labSink   = 2
)

func labCapacity() [][]int64 {
	return [][]int64{
		// A  B  C  D  E  F  G  H  I
		{0, 5, 9, 0, 0, 0, 0, 0, 4}, // A
		{0, 0, 2, 0, 0, 0, 2, 0, 2}, // B
		{0, 0, 0, 0, 0, 0, 0, 0, 0}, // C
		{0, 0, 0, 2, 0, 0, 0, 0, 0}, // D
		{0, 0, 0, 7, 0, 0, 0, 0, 0}, // E
		{0, 0, 2, 7, 7, 0, 0, 0, 0}, // F
		{0, 0, 7, 3, 3, 3, 0, 0, 0}, // G
		{0, 0, 7, 0, 0, 0, 7, 7, 0}, // H
		{0, 0, 4, 0, 0, 0, 2, 7, 0}, // I
	}
}

func mustNetwork(t testing.TB, capacity [][]int64) *network.Network {
	t.Helper()
	g, err := network.New(capacity)
	require.NoError(t, err)

	return g
}

// randomCapacity builds an n×n matrix where each off-diagonal pair is an edge
// with probability p and capacity uniform in [1, maxCap].
func randomCapacity(n int, p float64, maxCap int64, seed int64) [][]int64 {
	rng := rand.New(rand.NewSource(seed))
	m := make([][]int64, n)
	for u := range m {
		m[u] = make([]int64, n)
		for v := range m[u] {
			if u != v && rng.Float64() < p {
				m[u][v] = rng.Int63n(maxCap) + 1
			}
		}
	}

	return m
}
