package matching_test

import "testing"

func BenchmarkMatchers(b *testing.B) {
	cases := []struct {
		name   string
		n1, n2 int
		p      float64
	}{
		{"Small", 20, 20, 0.2},
		{"Medium", 60, 80, 0.1},
	}

	for _, tc := range cases {
		g, p := randomBipartite(tc.n1, tc.n2, tc.p, 42)
		for _, mt := range matchers {
			b.Run(tc.name+"/"+mt.name, func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, err := mt.run(g, p); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
