package services

import (
	"context"
	"errors"

	"github.com/zhiren/talenthub/internal/models"
	pgrepo "github.com/zhiren/talenthub/internal/repositories/postgres"
	"github.com/zhiren/talenthub/internal/utils"
)

type ApplicationService interface {
	List(ctx context.Context, status, jobID string) ([]models.Application, error)
	SetStatus(ctx context.Context, id string, status models.ApplicationStatus) (*models.Application, error)
}

type applicationService struct {
	applications pgrepo.ApplicationRepository
	candidates   pgrepo.CandidateRepository
}

func NewApplicationService(applications pgrepo.ApplicationRepository, candidates pgrepo.CandidateRepository) ApplicationService {
	return &applicationService{applications: applications, candidates: candidates}
}

func (s *applicationService) List(ctx context.Context, status, jobID string) ([]models.Application, error) {
	const op = "ApplicationService.List"

	rows, err := s.applications.List(ctx, status, jobID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list applications", err)
	}
	return rows, nil
}

// SetStatus advances the application workflow. Application status and
// candidate status are two distinct state machines; the mapping table in
// models decides when a workflow transition also moves the candidate's coarse
// pool status.
func (s *applicationService) SetStatus(ctx context.Context, id string, status models.ApplicationStatus) (*models.Application, error) {
	const op = "ApplicationService.SetStatus"

	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}
	if !status.Valid() {
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid application status: "+string(status), nil)
	}

	app, err := s.applications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "application not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get application", err)
	}

	if err := s.applications.UpdateStatus(ctx, id, status); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update application status", err)
	}
	app.Status = status

	if cs, ok := models.CandidateStatusFor(status); ok {
		if err := s.syncCandidateStatus(ctx, app.CandidateID, cs); err != nil {
			return nil, err
		}
	}
	return app, nil
}

func (s *applicationService) syncCandidateStatus(ctx context.Context, candidateID string, cs models.CandidateStatus) error {
	const op = "ApplicationService.SetStatus"

	cands, err := s.candidates.FindByIDs(ctx, []string{candidateID})
	if err != nil {
		return utils.E(utils.CodeInternal, op, "failed to load candidate", err)
	}
	if len(cands) == 0 {
		// orphaned application; nothing to sync
		return nil
	}

	c := cands[0]
	if c.Status == cs {
		return nil
	}
	c.Status = cs
	if err := s.candidates.Save(ctx, &c); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to sync candidate status", err)
	}
	return nil
}
