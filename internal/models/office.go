package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type Office struct {
	ID      string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name    string `gorm:"column:name;type:text" json:"name"`
	Address string `gorm:"column:address;type:text" json:"address"`
	City    string `gorm:"column:city;type:text" json:"city"`
	Country string `gorm:"column:country;type:text" json:"country"`

	ContactName  string `gorm:"column:contact_name;type:text" json:"contact_name"`
	ContactEmail string `gorm:"column:contact_email;type:text" json:"contact_email"`
	ContactPhone string `gorm:"column:contact_phone;type:text" json:"contact_phone"`

	Capacity   int            `gorm:"column:capacity" json:"capacity"`
	Facilities pq.StringArray `gorm:"column:facilities;type:text[]" json:"facilities"`
	Timezone   string         `gorm:"column:timezone;type:text" json:"timezone"`

	// per-weekday opening hours, e.g. {"mon":"09:30-18:00"}
	BusinessHours datatypes.JSON `gorm:"column:business_hours;type:jsonb" json:"business_hours,omitempty"`

	Active bool `gorm:"column:active" json:"active"`
	Remote bool `gorm:"column:remote" json:"remote"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (Office) TableName() string { return "offices" }
