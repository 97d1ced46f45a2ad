package models

import (
	"alfredoptarigan/resume-skill-ranker/internal/skills"
)

type ExtractRequest struct {
	Text string `json:"text"`
}

type ExtractResponse struct {
	Skills []string `json:"skills"`
}

type VocabularyResponse struct {
	Count  int      `json:"count"`
	Skills []string `json:"skills"`
}

type RankResponse struct {
	JobSkills  []string          `json:"job_skills"`
	Candidates []RankedCandidate `json:"candidates"`
	Notices    []Notice          `json:"notices"`
}

// RankedCandidate is a Candidate prepared for display.
type RankedCandidate struct {
	Rank            int      `json:"rank"`
	Filename        string   `json:"filename"`
	Skills          []string `json:"skills"`
	SkillsDisplay   string   `json:"skills_display"`
	Score           *float64 `json:"score,omitempty"`
	MatchPercentage string   `json:"match_percentage,omitempty"`
}

// NewRankResponse numbers candidates from 1 in their ranked order and formats
// skills and percentages for display.
func NewRankResponse(result *RankingResult) RankResponse {
	resp := RankResponse{
		JobSkills:  result.JobSkills,
		Candidates: make([]RankedCandidate, 0, len(result.Candidates)),
		Notices:    result.Notices,
	}
	if resp.JobSkills == nil {
		resp.JobSkills = []string{}
	}
	if resp.Notices == nil {
		resp.Notices = []Notice{}
	}

	for i, c := range result.Candidates {
		rc := RankedCandidate{
			Rank:          i + 1,
			Filename:      c.Filename,
			Skills:        c.Skills,
			SkillsDisplay: skills.JoinCapitalized(c.Skills),
			Score:         c.Score,
		}
		if c.Score != nil {
			rc.MatchPercentage = skills.FormatPercent(*c.Score)
		}
		resp.Candidates = append(resp.Candidates, rc)
	}

	return resp
}
