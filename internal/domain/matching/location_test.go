package matching

import "testing"

func TestLocationScore(t *testing.T) {
	cases := []struct {
		name     string
		pref     string
		remote   string
		jobLoc   string
		isRemote bool
		isHybrid bool
		want     float64
	}{
		{"remote job remote pref", "Berlin", "remote", "Austin, TX", true, false, 100},
		{"remote wins regardless of locations", "", "remote", "", true, false, 100},
		{"hybrid job hybrid pref", "", "hybrid", "Austin, TX", false, true, 100},
		{"remote pref onsite job", "Austin, TX", "remote", "Austin, TX", false, false, 30},
		{"substring containment", "Austin", "onsite", "Austin, TX", false, false, 100},
		{"containment reversed", "Austin, TX, USA", "onsite", "tx, usa", false, false, 100},
		{"same trailing component", "Dallas, TX", "onsite", "Austin, TX", false, false, 70},
		{"different trailing component", "Dallas, TX", "onsite", "Austin, CA", false, false, 50},
		{"single component no state match", "Dallas", "onsite", "Austin", false, false, 50},
		{"flexible candidate", "", "any", "", false, false, 80},
		{"any yields to exact location hit", "Austin", "any", "Austin, TX", false, false, 100},
		{"default fallback", "", "onsite", "", false, false, 50},
		{"hybrid pref onsite job", "", "hybrid", "", false, false, 50},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := locationScore(tc.pref, tc.remote, tc.jobLoc, tc.isRemote, tc.isHybrid)
			if got != tc.want {
				t.Fatalf("locationScore = %v, want %v", got, tc.want)
			}
		})
	}
}
