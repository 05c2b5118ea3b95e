// SPDX-License-Identifier: MIT

package network

// Residual is the mutable residual graph of one flow computation.
// It has the same shape as the Network it was created from.
type Residual struct {
	n    int
	data []int64
}

// N returns the number of vertices.
func (r *Residual) N() int {
	return r.n
}

// At returns residual[u][v]. Indices must be in range.
func (r *Residual) At(u, v int) int64 {
	return r.data[u*r.n+v]
}

// Row returns the residual row of u. The slice aliases r and must not be modified.
func (r *Residual) Row(u int) []int64 {
	return r.data[u*r.n : (u+1)*r.n]
}

// Augment pushes delta units of flow along u→v:
// residual[u][v] -= delta and residual[v][u] += delta.
func (r *Residual) Augment(u, v int, delta int64) {
	r.data[u*r.n+v] -= delta
	r.data[v*r.n+u] += delta
}

// NetFlow returns the net flow on u→v relative to g: capacity[u][v] - residual[u][v].
// It is antisymmetric: NetFlow(g,u,v) == -NetFlow(g,v,u).
func (r *Residual) NetFlow(g *Network, u, v int) int64 {
	return g.Capacity(u, v) - r.At(u, v)
}

// Clone returns an independent copy of r.
func (r *Residual) Clone() *Residual {
	data := make([]int64, len(r.data))
	copy(data, r.data)

	return &Residual{n: r.n, data: data}
}

// Matrix returns a deep copy of the residual capacities as nested slices.
func (r *Residual) Matrix() [][]int64 {
	return unflatten(r.n, r.data)
}
