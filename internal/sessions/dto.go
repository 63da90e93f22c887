package sessions

import "time"

type createRequest struct {
	Name       string         `json:"name"`
	Age        int            `json:"age"`
	Domain     string         `json:"domain"`
	Assessment map[string]int `json:"assessment"`
}

type setSkillsRequest struct {
	Skills []string `json:"skills"`
}

type sessionResponse struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Age            int            `json:"age"`
	Domain         string         `json:"domain"`
	Assessment     map[string]int `json:"assessment,omitempty"`
	ResumeFileName string         `json:"resumeFileName,omitempty"`
	Skills         []string       `json:"skills,omitempty"`
	SkillsSource   string         `json:"skillsSource,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

func toResponse(s Session) sessionResponse {
	return sessionResponse{
		ID:             s.ID,
		Name:           s.Name,
		Age:            s.Age,
		Domain:         s.Domain,
		Assessment:     s.Assessment,
		ResumeFileName: s.ResumeFileName,
		Skills:         s.Skills,
		SkillsSource:   string(s.SkillsSource),
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}
