package postgres

import (
	"context"
	"errors"

	"github.com/zhiren/talenthub/internal/models"
	"github.com/zhiren/talenthub/internal/utils"
	"gorm.io/gorm"
)

type ApplicationRepository interface {
	List(ctx context.Context, status, jobID string) ([]models.Application, error)
	GetByID(ctx context.Context, id string) (*models.Application, error)
	Create(ctx context.Context, a *models.Application) error
	UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) error
}

type applicationRepo struct {
	db *gorm.DB
}

func NewApplicationRepo(db *gorm.DB) ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) List(ctx context.Context, status, jobID string) ([]models.Application, error) {
	q := r.db.WithContext(ctx).Order("applied_at DESC")
	if status != "" && status != "all" {
		q = q.Where("status = ?", status)
	}
	if jobID != "" {
		q = q.Where("job_id = ?", jobID)
	}
	var rows []models.Application
	err := q.Find(&rows).Error
	return rows, err
}

func (r *applicationRepo) GetByID(ctx context.Context, id string) (*models.Application, error) {
	var a models.Application
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &a, err
}

func (r *applicationRepo) Create(ctx context.Context, a *models.Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) error {
	res := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}
