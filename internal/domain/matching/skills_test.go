package matching

import (
	"testing"
	"time"
)

func testMatcher(year int) *Matcher {
	m := New()
	m.now = func() time.Time {
		return time.Date(year, time.June, 1, 0, 0, 0, 0, time.UTC)
	}
	return m
}

func TestSkillMatches(t *testing.T) {
	m := New()

	cases := []struct {
		name   string
		job    string
		resume string
		want   bool
	}{
		{"exact", "python", "python", true},
		{"case insensitive", "Python", "PYTHON", true},
		{"trimmed", "  go  ", "go", true},
		{"substring job in resume", "react", "react native", true},
		{"substring resume in job", "amazon web services", "amazon", true},
		{"synonym js", "javascript", "js", true},
		{"synonym reversed", "ml", "machine learning", true},
		{"synonym aws", "aws", "amazon web services", true},
		{"synonym gcp long form", "gcp", "google cloud", true},
		{"unrelated", "rust", "cobol", false},
		{"cross-group", "javascript", "python", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := m.SkillMatches(tc.job, tc.resume); got != tc.want {
				t.Fatalf("SkillMatches(%q, %q) = %v, want %v", tc.job, tc.resume, got, tc.want)
			}
		})
	}
}

func TestSkillsScore_EmptyRequirements(t *testing.T) {
	m := New()

	score, matched, missing := m.skillsScore([]string{"python"}, nil, nil)
	if score != 100 {
		t.Fatalf("expected score 100, got %v", score)
	}
	if len(matched) != 0 || len(missing) != 0 {
		t.Fatalf("expected empty matched/missing, got %v / %v", matched, missing)
	}
}

func TestSkillsScore_RequiredOnly(t *testing.T) {
	m := New()

	score, matched, missing := m.skillsScore(
		[]string{"Python", "AWS"},
		[]string{"python", "aws", "docker"},
		nil,
	)

	// (2.0+2.0) / (2.0*3) * 100
	if got := round1(score); got != 66.7 {
		t.Fatalf("expected score 66.7, got %v", got)
	}
	if len(matched) != 2 || matched[0] != "python" || matched[1] != "aws" {
		t.Fatalf("unexpected matched: %v", matched)
	}
	if len(missing) != 1 || missing[0] != "docker" {
		t.Fatalf("unexpected missing: %v", missing)
	}
}

func TestSkillsScore_NiceToHaveWeighting(t *testing.T) {
	m := New()

	// One required hit (2.0) + one nice-to-have hit (1.0) out of 2.0+2*1.0.
	score, matched, _ := m.skillsScore(
		[]string{"go", "redis"},
		[]string{"go"},
		[]string{"redis", "kafka"},
	)
	if got := round1(score); got != 75.0 {
		t.Fatalf("expected score 75.0, got %v", got)
	}
	if len(matched) != 2 || matched[0] != "go" || matched[1] != "redis" {
		t.Fatalf("unexpected matched: %v", matched)
	}
}

func TestSkillsScore_MatchedDeduplicatedByFirstOccurrence(t *testing.T) {
	m := New()

	score, matched, missing := m.skillsScore(
		[]string{"python"},
		[]string{"Python"},
		[]string{"python"},
	)
	// Both entries still contribute weight: 3.0 / 3.0.
	if score != 100 {
		t.Fatalf("expected score 100, got %v", score)
	}
	if len(matched) != 1 || matched[0] != "Python" {
		t.Fatalf("expected single first-occurrence entry, got %v", matched)
	}
	if len(missing) != 0 {
		t.Fatalf("expected no missing, got %v", missing)
	}
}

func TestSkillsScore_PartitionOfRequired(t *testing.T) {
	m := New()

	required := []string{"go", "python", "terraform", "sql"}
	_, matched, missing := m.skillsScore([]string{"go", "sql"}, required, nil)

	if len(matched)+len(missing) != len(required) {
		t.Fatalf("matched+missing should cover required: %v / %v", matched, missing)
	}
	inMatched := map[string]bool{}
	for _, s := range matched {
		inMatched[s] = true
	}
	for _, s := range missing {
		if inMatched[s] {
			t.Fatalf("skill %q in both matched and missing", s)
		}
	}
}

func TestSkillsScore_SynonymMatchMonotonicity(t *testing.T) {
	m := New()

	before, _, missingBefore := m.skillsScore([]string{"html"}, []string{"javascript"}, nil)
	if len(missingBefore) != 1 || missingBefore[0] != "javascript" {
		t.Fatalf("expected javascript missing, got %v", missingBefore)
	}

	after, matchedAfter, missingAfter := m.skillsScore([]string{"html", "js"}, []string{"javascript"}, nil)
	if after <= before {
		t.Fatalf("adding a synonym skill should raise the score: before=%v after=%v", before, after)
	}
	if len(matchedAfter) != 1 || matchedAfter[0] != "javascript" {
		t.Fatalf("expected javascript matched, got %v", matchedAfter)
	}
	if len(missingAfter) != 0 {
		t.Fatalf("expected no missing, got %v", missingAfter)
	}
}

func TestNewWithTables_CustomSynonyms(t *testing.T) {
	m := NewWithTables(map[string][]string{"kubernetes": {"k8s"}}, nil)

	if !m.SkillMatches("kubernetes", "k8s") {
		t.Fatalf("custom synonym group should match")
	}
	if m.SkillMatches("javascript", "js") {
		t.Fatalf("default groups should be replaced, not merged")
	}
}
