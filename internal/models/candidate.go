package models

import (
	"time"

	"github.com/lib/pq"
)

type CandidateStatus string

const (
	CandidateActive   CandidateStatus = "active"
	CandidatePassive  CandidateStatus = "passive"
	CandidateHired    CandidateStatus = "hired"
	CandidateRejected CandidateStatus = "rejected"
)

// Candidate is a person in the talent pool. Candidates are never hard-deleted;
// removal is modeled as a status transition (e.g. "rejected").
type Candidate struct {
	ID       string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name     string `gorm:"column:name;type:text" json:"name"`
	Email    string `gorm:"column:email;type:text;uniqueIndex" json:"email"`
	Phone    string `gorm:"column:phone;type:text" json:"phone"`
	Location string `gorm:"column:location;type:text" json:"location"`

	// Free-text experience band, e.g. "5年". The leading integer is what
	// filtering and stats parse out of it.
	Experience string `gorm:"column:experience;type:text" json:"experience"`
	Education  string `gorm:"column:education;type:text" json:"education"`

	Skills pq.StringArray `gorm:"column:skills;type:text[]" json:"skills"`

	Rating int             `gorm:"column:rating" json:"rating"` // 1..5
	Status CandidateStatus `gorm:"column:status;type:text" json:"status"`

	Applications []Application   `gorm:"foreignKey:CandidateID" json:"applied_jobs,omitempty"`
	Notes        []CandidateNote `gorm:"foreignKey:CandidateID" json:"notes,omitempty"`

	LastContact       string `gorm:"column:last_contact;type:text" json:"last_contact"` // YYYY-MM-DD
	Source            string `gorm:"column:source;type:text" json:"source"`
	SalaryExpectation string `gorm:"column:salary_expectation;type:text" json:"salary_expectation,omitempty"`
	ResumeURL         string `gorm:"column:resume_url;type:text" json:"resume_url,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (Candidate) TableName() string { return "candidates" }

type CandidateNote struct {
	ID          string    `gorm:"column:id;type:text;primaryKey" json:"id"`
	CandidateID string    `gorm:"column:candidate_id;type:uuid;index" json:"-"`
	Content     string    `gorm:"column:content;type:text" json:"content"`
	CreatedBy   string    `gorm:"column:created_by;type:text" json:"created_by"`
	CreatedAt   time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
}

func (CandidateNote) TableName() string { return "candidate_notes" }
