package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/zhiren/talenthub/internal/models"
	"gorm.io/datatypes"
	pgrepo "github.com/zhiren/talenthub/internal/repositories/postgres"
	"github.com/zhiren/talenthub/internal/utils"
)

type OfficeInput struct {
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	City         string   `json:"city"`
	Country      string   `json:"country"`
	ContactName  string   `json:"contact_name"`
	ContactEmail string   `json:"contact_email"`
	ContactPhone string   `json:"contact_phone"`
	Capacity     int      `json:"capacity"`
	Facilities    []string       `json:"facilities"`
	Timezone      string         `json:"timezone"`
	BusinessHours datatypes.JSON `json:"business_hours"`
	Active        *bool          `json:"active"`
	Remote        *bool          `json:"remote"`
}

type OfficeService interface {
	List(ctx context.Context, activeOnly bool) ([]models.Office, error)
	Create(ctx context.Context, in OfficeInput) (*models.Office, error)
	Update(ctx context.Context, id string, in OfficeInput) (*models.Office, error)
	Delete(ctx context.Context, id string) error
}

type officeService struct {
	offices pgrepo.OfficeRepository
}

func NewOfficeService(offices pgrepo.OfficeRepository) OfficeService {
	return &officeService{offices: offices}
}

func (s *officeService) List(ctx context.Context, activeOnly bool) ([]models.Office, error) {
	const op = "OfficeService.List"

	rows, err := s.offices.List(ctx, activeOnly)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list offices", err)
	}
	return rows, nil
}

func (s *officeService) Create(ctx context.Context, in OfficeInput) (*models.Office, error) {
	const op = "OfficeService.Create"

	if in.Name == "" || in.City == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "name and city are required", nil)
	}

	now := time.Now().UTC()
	o := &models.Office{
		ID:            uuid.NewString(),
		Name:          in.Name,
		Address:       in.Address,
		City:          in.City,
		Country:       in.Country,
		ContactName:   in.ContactName,
		ContactEmail:  in.ContactEmail,
		ContactPhone:  in.ContactPhone,
		Capacity:      in.Capacity,
		Facilities:    in.Facilities,
		Timezone:      in.Timezone,
		BusinessHours: in.BusinessHours,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if in.Active != nil {
		o.Active = *in.Active
	}
	if in.Remote != nil {
		o.Remote = *in.Remote
	}

	if err := s.offices.Create(ctx, o); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create office", err)
	}
	return o, nil
}

func (s *officeService) Update(ctx context.Context, id string, in OfficeInput) (*models.Office, error) {
	const op = "OfficeService.Update"

	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}

	o, err := s.offices.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "office not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get office", err)
	}

	if in.Name != "" {
		o.Name = in.Name
	}
	if in.Address != "" {
		o.Address = in.Address
	}
	if in.City != "" {
		o.City = in.City
	}
	if in.Country != "" {
		o.Country = in.Country
	}
	if in.ContactName != "" {
		o.ContactName = in.ContactName
	}
	if in.ContactEmail != "" {
		o.ContactEmail = in.ContactEmail
	}
	if in.ContactPhone != "" {
		o.ContactPhone = in.ContactPhone
	}
	if in.Capacity > 0 {
		o.Capacity = in.Capacity
	}
	if in.Facilities != nil {
		o.Facilities = in.Facilities
	}
	if in.Timezone != "" {
		o.Timezone = in.Timezone
	}
	if len(in.BusinessHours) > 0 {
		o.BusinessHours = in.BusinessHours
	}
	if in.Active != nil {
		o.Active = *in.Active
	}
	if in.Remote != nil {
		o.Remote = *in.Remote
	}
	o.UpdatedAt = time.Now().UTC()

	if err := s.offices.Update(ctx, o); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update office", err)
	}
	return o, nil
}

// Delete hands the referential check to the backing store: a foreign key from
// active job postings makes Postgres reject the delete.
func (s *officeService) Delete(ctx context.Context, id string) error {
	const op = "OfficeService.Delete"

	if id == "" {
		return utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}
	if err := s.offices.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "office not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete office", err)
	}
	return nil
}
