package sessions

import "time"

// SkillsSource records where the session's skill list came from.
type SkillsSource string

const (
	SkillsFromResume SkillsSource = "resume"
	SkillsFromManual SkillsSource = "manual"
)

// Session holds one user's journey through the advice pipeline. Sessions are
// kept in memory only and disappear on restart.
type Session struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Age              int            `json:"age"`
	Domain           string         `json:"domain"`
	Assessment       map[string]int `json:"assessment,omitempty"`
	ResumeFileName   string         `json:"resumeFileName,omitempty"`
	ResumeStorageKey string         `json:"-"`
	ResumeText       string         `json:"-"`
	Skills           []string       `json:"skills,omitempty"`
	SkillsSource     SkillsSource   `json:"skillsSource,omitempty"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

// HasSkills reports whether a skill list has been attached, either from a
// resume or entered manually.
func (s Session) HasSkills() bool {
	return len(s.Skills) > 0
}

// HasAssessment reports whether the self assessment has been completed.
func (s Session) HasAssessment() bool {
	return len(s.Assessment) > 0
}
