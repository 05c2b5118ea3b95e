// SPDX-License-Identifier: MIT

package scenario

// Lab returns the nine-vertex lab network A..I with source A and sink C.
// D→D and H→H are self-loops; they carry capacity but no flow.
func Lab() *FlowScenario {
	return &FlowScenario{
		Name:   "lab",
		Labels: Letters(9),
		Source: "A",
		Sink:   "C",
		Edges: []FlowEdge{
			{"A", "B", 5}, {"A", "C", 9}, {"A", "I", 4},
			{"B", "C", 2}, {"B", "G", 2}, {"B", "I", 2},
			{"D", "D", 2},
			{"E", "D", 7},
			{"F", "C", 2}, {"F", "D", 7}, {"F", "E", 7},
			{"G", "C", 7}, {"G", "D", 3}, {"G", "E", 3}, {"G", "F", 3},
			{"H", "C", 7}, {"H", "G", 7}, {"H", "H", 7},
			{"I", "C", 4}, {"I", "G", 2}, {"I", "H", 7},
		},
	}
}

// LabBipartite returns the 35-edge matching lab graph over vertices 2..16.
// It carries no partition; colour it with bipartite.Color.
func LabBipartite() *MatchingScenario {
	return &MatchingScenario{
		Name: "lab-bipartite",
		Edges: [][]int{
			{4, 13}, {2, 8}, {13, 16}, {4, 12}, {8, 13}, {7, 9}, {11, 14},
			{6, 12}, {14, 16}, {3, 13}, {10, 14}, {2, 6}, {7, 15},
			{6, 14}, {5, 10}, {3, 14}, {9, 13}, {5, 16}, {2, 10}, {4, 5},
			{2, 3}, {2, 16}, {10, 13}, {3, 7}, {2, 4}, {5, 8}, {7, 16},
			{4, 14}, {3, 12}, {6, 13}, {7, 11}, {5, 15}, {5, 11},
			{13, 15}, {9, 12},
		},
	}
}
