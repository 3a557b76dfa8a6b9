package cycle

import "testing"

func TestLongest(t *testing.T) {
	tests := []struct {
		name  string
		edges []Edge
		want  int
	}{
		{
			name:  "no edges",
			edges: nil,
			want:  0,
		},
		{
			name:  "single edge no cycle",
			edges: []Edge{{"A", "B"}},
			want:  0,
		},
		{
			name:  "self loop counts as length one",
			edges: []Edge{{"A", "A"}},
			want:  1,
		},
		{
			name:  "two node cycle",
			edges: []Edge{{"A", "B"}, {"B", "A"}},
			want:  2,
		},
		{
			name:  "triangle",
			edges: []Edge{{"A", "B"}, {"B", "C"}, {"C", "A"}},
			want:  3,
		},
		{
			name:  "chain has no cycle",
			edges: []Edge{{"A", "B"}, {"B", "C"}},
			want:  0,
		},
		{
			name:  "longer chain has no cycle",
			edges: []Edge{{"A", "B"}, {"B", "C"}, {"C", "D"}},
			want:  0,
		},
		{
			name:  "tree has no cycle",
			edges: []Edge{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "E"}},
			want:  0,
		},
		{
			name:  "two cycles in one graph longest wins",
			edges: []Edge{{"A", "B"}, {"B", "A"}, {"A", "C"}, {"C", "D"}, {"D", "A"}},
			want:  3,
		},
		{
			name:  "two disjoint cycles longest wins",
			edges: []Edge{{"A", "B"}, {"B", "A"}, {"C", "D"}, {"D", "E"}, {"E", "C"}},
			want:  3,
		},
		{
			name:  "four node cycle",
			edges: []Edge{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}},
			want:  4,
		},
		{
			name:  "duplicate edges still one cycle",
			edges: []Edge{{"A", "B"}, {"B", "A"}, {"A", "B"}},
			want:  2,
		},
		{
			name:  "repeated self loops",
			edges: []Edge{{"A", "A"}, {"A", "A"}},
			want:  1,
		},
		{
			name:  "self loop beside longer cycle",
			edges: []Edge{{"A", "A"}, {"A", "B"}, {"B", "A"}},
			want:  2,
		},
		{
			name:  "cycle not through first source",
			edges: []Edge{{"X", "A"}, {"A", "B"}, {"B", "A"}},
			want:  2,
		},
		{
			name:  "figure eight shares a vertex",
			edges: []Edge{{"A", "B"}, {"B", "A"}, {"A", "C"}, {"C", "D"}, {"D", "A"}, {"D", "E"}, {"E", "D"}},
			want:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Longest(tt.edges)
			if got != tt.want {
				t.Errorf("Longest(%v) = %d, expected %d", tt.edges, got, tt.want)
			}
		})
	}
}

// TestLongest_CompleteGraph checks the exhaustive search on a dense graph:
// in a complete directed graph on n vertices the longest simple cycle visits
// all n of them.
func TestLongest_CompleteGraph(t *testing.T) {
	names := []string{"A", "B", "C", "D", "E"}
	var edges []Edge
	for _, a := range names {
		for _, b := range names {
			if a != b {
				edges = append(edges, Edge{a, b})
			}
		}
	}

	if got := Longest(edges); got != len(names) {
		t.Errorf("Longest(complete graph on %d) = %d, expected %d", len(names), got, len(names))
	}
}

// TestLongest_Deterministic verifies repeated runs agree; the search must not
// depend on map iteration order.
func TestLongest_Deterministic(t *testing.T) {
	edges := []Edge{{"A", "B"}, {"B", "C"}, {"C", "A"}, {"B", "D"}, {"D", "B"}, {"C", "C"}}
	want := Longest(edges)
	for i := 0; i < 20; i++ {
		if got := Longest(edges); got != want {
			t.Fatalf("run %d: Longest = %d, expected %d", i, got, want)
		}
	}
}
