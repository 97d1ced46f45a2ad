package models

type NoticeLevel string

const (
	NoticeError   NoticeLevel = "error"
	NoticeWarning NoticeLevel = "warning"
)

// Candidate is one uploaded resume and the skills found in it.
// Score is nil when no job skills were available to score against.
type Candidate struct {
	Filename string   `json:"filename"`
	Skills   []string `json:"skills"`
	Score    *float64 `json:"score,omitempty"`
}

// Notice is a non-fatal, per-file problem reported back to the user.
type Notice struct {
	Level    NoticeLevel `json:"level"`
	Filename string      `json:"filename,omitempty"`
	Message  string      `json:"message"`
}

// RankingResult is the outcome of ranking one batch of uploads.
type RankingResult struct {
	JobSkills  []string    `json:"job_skills"`
	Candidates []Candidate `json:"candidates"`
	Notices    []Notice    `json:"notices"`
}

// Scored reports whether candidates carry a match score.
func (r *RankingResult) Scored() bool {
	return len(r.JobSkills) > 0
}
