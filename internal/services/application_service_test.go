package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zhiren/talenthub/internal/models"
	"github.com/zhiren/talenthub/internal/repositories/memory"
	"github.com/zhiren/talenthub/internal/utils"
)

type appRepoStub struct {
	apps map[string]*models.Application
}

func (r *appRepoStub) List(context.Context, string, string) ([]models.Application, error) {
	out := make([]models.Application, 0, len(r.apps))
	for _, a := range r.apps {
		out = append(out, *a)
	}
	return out, nil
}

func (r *appRepoStub) GetByID(_ context.Context, id string) (*models.Application, error) {
	a, ok := r.apps[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *appRepoStub) Create(_ context.Context, a *models.Application) error {
	r.apps[a.ID] = a
	return nil
}

func (r *appRepoStub) UpdateStatus(_ context.Context, id string, status models.ApplicationStatus) error {
	a, ok := r.apps[id]
	if !ok {
		return utils.ErrNotFound
	}
	a.Status = status
	return nil
}

func TestSetStatusSyncsCandidate(t *testing.T) {
	store := memory.NewCandidateStore()
	seed := memory.SeedCandidates()

	apps := &appRepoStub{apps: map[string]*models.Application{
		"app-1": {ID: "app-1", CandidateID: seed[0].ID, Status: models.ApplicationInterviewed},
	}}
	svc := NewApplicationService(apps, store)

	got, err := svc.SetStatus(context.Background(), "app-1", models.ApplicationHired)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationHired, got.Status)

	cands, _ := store.FindByIDs(context.Background(), []string{seed[0].ID})
	require.Len(t, cands, 1)
	assert.Equal(t, models.CandidateHired, cands[0].Status)
}

func TestSetStatusLeavesCandidateForWorkflowStates(t *testing.T) {
	store := memory.NewCandidateStore()
	seed := memory.SeedCandidates()

	apps := &appRepoStub{apps: map[string]*models.Application{
		"app-1": {ID: "app-1", CandidateID: seed[0].ID, Status: models.ApplicationSubmitted},
	}}
	svc := NewApplicationService(apps, store)

	_, err := svc.SetStatus(context.Background(), "app-1", models.ApplicationReviewing)
	require.NoError(t, err)

	cands, _ := store.FindByIDs(context.Background(), []string{seed[0].ID})
	require.Len(t, cands, 1)
	assert.Equal(t, seed[0].Status, cands[0].Status)
}

func TestSetStatusValidation(t *testing.T) {
	svc := NewApplicationService(&appRepoStub{apps: map[string]*models.Application{}}, memory.NewCandidateStore())

	_, err := svc.SetStatus(context.Background(), "app-1", "archived")
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))

	_, err = svc.SetStatus(context.Background(), "missing", models.ApplicationHired)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func TestSetStatusOrphanedApplication(t *testing.T) {
	apps := &appRepoStub{apps: map[string]*models.Application{
		"app-1": {ID: "app-1", CandidateID: "gone", Status: models.ApplicationSubmitted},
	}}
	svc := NewApplicationService(apps, memory.NewCandidateStore())

	got, err := svc.SetStatus(context.Background(), "app-1", models.ApplicationRejected)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationRejected, got.Status)
}
