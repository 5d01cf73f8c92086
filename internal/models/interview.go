package models

// Interview rounds are mutated by direct field edits and hard-deleted when
// cancelled from the schedule, unlike candidates.
type Interview struct {
	ID            string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	CandidateName string `gorm:"column:candidate_name;type:text" json:"candidate_name"`
	JobTitle      string `gorm:"column:job_title;type:text" json:"job_title"`
	Interviewer   string `gorm:"column:interviewer;type:text" json:"interviewer"`

	Type string `gorm:"column:type;type:text" json:"type"` // technical|video|onsite|phone

	Date            string `gorm:"column:date;type:text" json:"date"` // YYYY-MM-DD
	Time            string `gorm:"column:time;type:text" json:"time"` // HH:MM
	DurationMinutes int    `gorm:"column:duration_minutes" json:"duration_minutes"`
	Location        string `gorm:"column:location;type:text" json:"location"`

	Status string `gorm:"column:status;type:text" json:"status"` // scheduled|completed|pending|cancelled
	Stage  string `gorm:"column:stage;type:text" json:"stage"`
}

func (Interview) TableName() string { return "interviews" }
