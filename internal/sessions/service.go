package sessions

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	AgeMin = 10
	AgeMax = 80
)

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// CreateInput carries the profile and self assessment collected up front.
type CreateInput struct {
	Name       string
	Age        int
	Domain     string
	Assessment map[string]int
}

func (s *Service) Create(ctx context.Context, input CreateInput) (Session, error) {
	if s == nil || s.Repo == nil {
		return Session{}, errors.New("sessions service not configured")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return Session{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if input.Age < AgeMin || input.Age > AgeMax {
		return Session{}, fmt.Errorf("%w: age %d must be between %d and %d", ErrInvalidInput, input.Age, AgeMin, AgeMax)
	}
	domain := strings.TrimSpace(input.Domain)
	if domain == "" {
		return Session{}, fmt.Errorf("%w: domain is required", ErrInvalidInput)
	}
	assessment, err := ParseAssessment(input.Assessment)
	if err != nil {
		return Session{}, err
	}
	session := Session{
		ID:         uuid.NewString(),
		Name:       name,
		Age:        input.Age,
		Domain:     domain,
		Assessment: assessment,
	}
	if err := s.Repo.Create(ctx, session); err != nil {
		return Session{}, err
	}
	return s.Repo.GetByID(ctx, session.ID)
}

func (s *Service) GetByID(ctx context.Context, sessionID string) (Session, error) {
	if s == nil || s.Repo == nil {
		return Session{}, errors.New("sessions service not configured")
	}
	if strings.TrimSpace(sessionID) == "" {
		return Session{}, fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, sessionID)
}

// AttachResume records the uploaded resume and the skills extracted from it.
func (s *Service) AttachResume(ctx context.Context, sessionID, fileName, storageKey, text string, skills []string) (Session, error) {
	session, err := s.GetByID(ctx, sessionID)
	if err != nil {
		return Session{}, err
	}
	session.ResumeFileName = fileName
	session.ResumeStorageKey = storageKey
	session.ResumeText = text
	session.Skills = skills
	session.SkillsSource = SkillsFromResume
	if err := s.Repo.Update(ctx, session); err != nil {
		return Session{}, err
	}
	return s.Repo.GetByID(ctx, sessionID)
}

// SetSkills replaces the session's skill list with a manually entered one.
// Used when no resume is available or extraction produced nothing useful.
func (s *Service) SetSkills(ctx context.Context, sessionID string, skills []string) (Session, error) {
	session, err := s.GetByID(ctx, sessionID)
	if err != nil {
		return Session{}, err
	}
	if len(skills) == 0 {
		return Session{}, fmt.Errorf("%w: at least one skill is required", ErrInvalidInput)
	}
	session.Skills = skills
	session.SkillsSource = SkillsFromManual
	if err := s.Repo.Update(ctx, session); err != nil {
		return Session{}, err
	}
	return s.Repo.GetByID(ctx, sessionID)
}
