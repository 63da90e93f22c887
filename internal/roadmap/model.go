package roadmap

// MonthPlan is one step of the twelve month roadmap.
type MonthPlan struct {
	Month  int      `json:"month"`
	Focus  string   `json:"focus"`
	Topics []string `json:"topics,omitempty"`
}

// Roadmap is the structured career plan produced by the model.
type Roadmap struct {
	CareerAdvice string      `json:"careerAdvice"`
	Months       []MonthPlan `json:"months"`
}
