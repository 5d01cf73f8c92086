package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/zhiren/talenthub/internal/models"
	pgrepo "github.com/zhiren/talenthub/internal/repositories/postgres"
	"github.com/zhiren/talenthub/internal/utils"
)

type InterviewInput struct {
	CandidateName   string `json:"candidate_name"`
	JobTitle        string `json:"job_title"`
	Interviewer     string `json:"interviewer"`
	Type            string `json:"type"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"duration_minutes"`
	Location        string `json:"location"`
	Status          string `json:"status"`
	Stage           string `json:"stage"`
}

type InterviewService interface {
	List(ctx context.Context, status string) ([]models.Interview, error)
	Create(ctx context.Context, in InterviewInput) (*models.Interview, error)
	Update(ctx context.Context, id string, in InterviewInput) (*models.Interview, error)
	Delete(ctx context.Context, id string) error
}

type interviewService struct {
	interviews pgrepo.InterviewRepository
}

func NewInterviewService(interviews pgrepo.InterviewRepository) InterviewService {
	return &interviewService{interviews: interviews}
}

func (s *interviewService) List(ctx context.Context, status string) ([]models.Interview, error) {
	const op = "InterviewService.List"

	rows, err := s.interviews.List(ctx, status)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list interviews", err)
	}
	return rows, nil
}

func (s *interviewService) Create(ctx context.Context, in InterviewInput) (*models.Interview, error) {
	const op = "InterviewService.Create"

	if in.CandidateName == "" || in.JobTitle == "" || in.Date == "" || in.Time == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "candidate_name, job_title, date, and time are required", nil)
	}

	iv := &models.Interview{
		ID:              uuid.NewString(),
		CandidateName:   in.CandidateName,
		JobTitle:        in.JobTitle,
		Interviewer:     in.Interviewer,
		Type:            in.Type,
		Date:            in.Date,
		Time:            in.Time,
		DurationMinutes: in.DurationMinutes,
		Location:        in.Location,
		Status:          in.Status,
		Stage:           in.Stage,
	}
	if iv.Status == "" {
		iv.Status = "scheduled"
	}
	if iv.DurationMinutes == 0 {
		iv.DurationMinutes = 60
	}

	if err := s.interviews.Create(ctx, iv); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create interview", err)
	}
	return iv, nil
}

// Update overwrites the editable fields directly; only non-empty input fields
// are applied.
func (s *interviewService) Update(ctx context.Context, id string, in InterviewInput) (*models.Interview, error) {
	const op = "InterviewService.Update"

	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}

	iv, err := s.interviews.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "interview not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get interview", err)
	}

	if in.CandidateName != "" {
		iv.CandidateName = in.CandidateName
	}
	if in.JobTitle != "" {
		iv.JobTitle = in.JobTitle
	}
	if in.Interviewer != "" {
		iv.Interviewer = in.Interviewer
	}
	if in.Type != "" {
		iv.Type = in.Type
	}
	if in.Date != "" {
		iv.Date = in.Date
	}
	if in.Time != "" {
		iv.Time = in.Time
	}
	if in.DurationMinutes > 0 {
		iv.DurationMinutes = in.DurationMinutes
	}
	if in.Location != "" {
		iv.Location = in.Location
	}
	if in.Status != "" {
		iv.Status = in.Status
	}
	if in.Stage != "" {
		iv.Stage = in.Stage
	}

	if err := s.interviews.Update(ctx, iv); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update interview", err)
	}
	return iv, nil
}

func (s *interviewService) Delete(ctx context.Context, id string) error {
	const op = "InterviewService.Delete"

	if id == "" {
		return utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}
	if err := s.interviews.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "interview not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete interview", err)
	}
	return nil
}
