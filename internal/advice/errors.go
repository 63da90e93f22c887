package advice

import "errors"

var (
	// ErrSkillsRequired means no skills are attached to the session yet,
	// neither from a resume nor entered manually.
	ErrSkillsRequired = errors.New("skills are required before generating a plan")

	// ErrAssessmentRequired means the self assessment is missing.
	ErrAssessmentRequired = errors.New("assessment is required before generating a plan")

	// ErrPlanNotFound means no plan has been generated for the session.
	ErrPlanNotFound = errors.New("plan not found")

	// ErrArtifactNotFound means the requested artifact was not produced.
	ErrArtifactNotFound = errors.New("artifact not found")
)
