package postgres

import (
	"context"
	"errors"

	"github.com/zhiren/talenthub/internal/models"
	"github.com/zhiren/talenthub/internal/utils"
	"gorm.io/gorm"
)

type InterviewRepository interface {
	List(ctx context.Context, status string) ([]models.Interview, error)
	GetByID(ctx context.Context, id string) (*models.Interview, error)
	Create(ctx context.Context, iv *models.Interview) error
	Update(ctx context.Context, iv *models.Interview) error
	Delete(ctx context.Context, id string) error
}

type interviewRepo struct {
	db *gorm.DB
}

func NewInterviewRepo(db *gorm.DB) InterviewRepository {
	return &interviewRepo{db: db}
}

func (r *interviewRepo) List(ctx context.Context, status string) ([]models.Interview, error) {
	q := r.db.WithContext(ctx).Order("date, time")
	if status != "" && status != "all" {
		q = q.Where("status = ?", status)
	}
	var rows []models.Interview
	err := q.Find(&rows).Error
	return rows, err
}

func (r *interviewRepo) GetByID(ctx context.Context, id string) (*models.Interview, error) {
	var iv models.Interview
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&iv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &iv, err
}

func (r *interviewRepo) Create(ctx context.Context, iv *models.Interview) error {
	return r.db.WithContext(ctx).Create(iv).Error
}

func (r *interviewRepo) Update(ctx context.Context, iv *models.Interview) error {
	return r.db.WithContext(ctx).Save(iv).Error
}

// Delete removes the row outright; interviews are the one entity with a hard
// delete lifecycle.
func (r *interviewRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Interview{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}
