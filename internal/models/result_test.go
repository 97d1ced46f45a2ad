package models

import (
	"testing"
)

func TestNewRankResponse(t *testing.T) {
	t.Parallel()

	half := 0.5
	result := &RankingResult{
		JobSkills: []string{"machine learning", "python"},
		Candidates: []Candidate{
			{Filename: "b.pdf", Skills: []string{"machine learning", "python"}, Score: ptr(1.0)},
			{Filename: "a.txt", Skills: []string{"python", "sql"}, Score: &half},
		},
	}

	resp := NewRankResponse(result)
	if len(resp.Candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(resp.Candidates))
	}

	first := resp.Candidates[0]
	if first.Rank != 1 || first.Filename != "b.pdf" || first.MatchPercentage != "100.0%" {
		t.Fatalf("unexpected first candidate: %+v", first)
	}
	if first.SkillsDisplay != "Machine learning, Python" {
		t.Fatalf("unexpected skills display: %q", first.SkillsDisplay)
	}

	second := resp.Candidates[1]
	if second.Rank != 2 || second.MatchPercentage != "50.0%" {
		t.Fatalf("unexpected second candidate: %+v", second)
	}
	if resp.Notices == nil {
		t.Fatalf("notices should be an empty list, not nil")
	}
}

func TestNewRankResponseWithoutScores(t *testing.T) {
	t.Parallel()

	result := &RankingResult{
		Candidates: []Candidate{{Filename: "a.txt", Skills: []string{"sql"}}},
	}
	if result.Scored() {
		t.Fatalf("result without job skills must not be scored")
	}

	resp := NewRankResponse(result)
	c := resp.Candidates[0]
	if c.Score != nil || c.MatchPercentage != "" {
		t.Fatalf("expected no score, got %+v", c)
	}
	if resp.JobSkills == nil || len(resp.JobSkills) != 0 {
		t.Fatalf("expected empty job skills, got %v", resp.JobSkills)
	}
}

func ptr(f float64) *float64 {
	return &f
}
