package postgres

import (
	"context"
	"errors"

	"github.com/zhiren/talenthub/internal/models"
	"github.com/zhiren/talenthub/internal/utils"
	"gorm.io/gorm"
)

type CandidateRepository interface {
	List(ctx context.Context) ([]models.Candidate, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Candidate, error)
	FindByEmail(ctx context.Context, email string) (*models.Candidate, error)
	Create(ctx context.Context, c *models.Candidate) error
	Save(ctx context.Context, c *models.Candidate) error
	SaveAll(ctx context.Context, cands []models.Candidate) error
}

type candidateRepo struct {
	db *gorm.DB
}

func NewCandidateRepo(db *gorm.DB) CandidateRepository {
	return &candidateRepo{db: db}
}

func (r *candidateRepo) List(ctx context.Context) ([]models.Candidate, error) {
	var rows []models.Candidate
	err := r.db.WithContext(ctx).
		Preload("Notes").
		Preload("Applications").
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *candidateRepo) FindByIDs(ctx context.Context, ids []string) ([]models.Candidate, error) {
	var rows []models.Candidate
	if len(ids) == 0 {
		return rows, nil
	}
	err := r.db.WithContext(ctx).
		Preload("Notes").
		Where("id IN ?", ids).
		Find(&rows).Error
	return rows, err
}

func (r *candidateRepo) FindByEmail(ctx context.Context, email string) (*models.Candidate, error) {
	var c models.Candidate
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Take(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &c, err
}

func (r *candidateRepo) Create(ctx context.Context, c *models.Candidate) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *candidateRepo) Save(ctx context.Context, c *models.Candidate) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(c).Error
}

func (r *candidateRepo) SaveAll(ctx context.Context, cands []models.Candidate) error {
	if len(cands) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range cands {
			if err := tx.Session(&gorm.Session{FullSaveAssociations: true}).
				Save(&cands[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
