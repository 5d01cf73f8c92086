package postgres

import (
	"context"
	"errors"

	"github.com/zhiren/talenthub/internal/models"
	"github.com/zhiren/talenthub/internal/utils"
	"gorm.io/gorm"
)

type OfficeRepository interface {
	List(ctx context.Context, activeOnly bool) ([]models.Office, error)
	GetByID(ctx context.Context, id string) (*models.Office, error)
	Create(ctx context.Context, o *models.Office) error
	Update(ctx context.Context, o *models.Office) error
	Delete(ctx context.Context, id string) error
}

type officeRepo struct {
	db *gorm.DB
}

func NewOfficeRepo(db *gorm.DB) OfficeRepository {
	return &officeRepo{db: db}
}

func (r *officeRepo) List(ctx context.Context, activeOnly bool) ([]models.Office, error) {
	q := r.db.WithContext(ctx).Order("name")
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	var rows []models.Office
	err := q.Find(&rows).Error
	return rows, err
}

func (r *officeRepo) GetByID(ctx context.Context, id string) (*models.Office, error) {
	var o models.Office
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &o, err
}

func (r *officeRepo) Create(ctx context.Context, o *models.Office) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *officeRepo) Update(ctx context.Context, o *models.Office) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *officeRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Office{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}
