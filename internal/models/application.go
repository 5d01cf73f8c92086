package models

import "time"

type ApplicationStatus string

const (
	ApplicationSubmitted          ApplicationStatus = "submitted"
	ApplicationReviewing          ApplicationStatus = "reviewing"
	ApplicationInterviewed        ApplicationStatus = "interviewed"
	ApplicationInterviewScheduled ApplicationStatus = "interview_scheduled"
	ApplicationAccepted           ApplicationStatus = "accepted"
	ApplicationRejected           ApplicationStatus = "rejected"
	ApplicationPending            ApplicationStatus = "pending"
	ApplicationHired              ApplicationStatus = "hired"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationSubmitted, ApplicationReviewing, ApplicationInterviewed,
		ApplicationInterviewScheduled, ApplicationAccepted, ApplicationRejected,
		ApplicationPending, ApplicationHired:
		return true
	}
	return false
}

// Application links one candidate to one job posting. Its status is the
// authoritative workflow state; Candidate.Status is a coarser, separately
// tracked field mapped at the boundary (see CandidateStatusFor).
type Application struct {
	ID          string            `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	CandidateID string            `gorm:"column:candidate_id;type:uuid;index" json:"candidate_id"`
	JobID       string            `gorm:"column:job_id;type:text;index" json:"job_id"`
	JobTitle    string            `gorm:"column:job_title;type:text" json:"job_title"`
	Department  string            `gorm:"column:department;type:text" json:"department"`
	Status      ApplicationStatus `gorm:"column:status;type:text" json:"status"`
	AppliedAt   time.Time         `gorm:"column:applied_at;type:timestamptz" json:"applied_at"`
}

func (Application) TableName() string { return "applications" }

// candidateStatusByApplication maps the fine-grained application workflow onto
// the coarse candidate pool status. Statuses without an entry leave the
// candidate untouched.
var candidateStatusByApplication = map[ApplicationStatus]CandidateStatus{
	ApplicationHired:    CandidateHired,
	ApplicationAccepted: CandidateHired,
	ApplicationRejected: CandidateRejected,
}

func CandidateStatusFor(s ApplicationStatus) (CandidateStatus, bool) {
	cs, ok := candidateStatusByApplication[s]
	return cs, ok
}
