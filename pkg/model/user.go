package model

import (
	"time"

	"github.com/lib/pq"

	"github.com/doodlesbykumbi/jobportal-in-go/pkg/identity"
)

// User represents an account in the job portal, either a job seeker or an
// employer. Password holds a bcrypt hash, never plaintext.
type User struct {
	ID        string        `gorm:"column:id;primaryKey"`
	FirstName string        `gorm:"column:first_name;not null"`
	LastName  string        `gorm:"column:last_name;not null"`
	Email     string        `gorm:"column:email;not null;uniqueIndex"`
	Password  string        `gorm:"column:password;not null"`
	Role      identity.Role `gorm:"column:role;not null"`

	Phone   string `gorm:"column:phone"`
	City    string `gorm:"column:city"`
	Country string `gorm:"column:country"`

	// Job seeker profile
	Resume     string         `gorm:"column:resume"`
	Skills     pq.StringArray `gorm:"column:skills;type:text[]"`
	Experience string         `gorm:"column:experience"`
	Bio        string         `gorm:"column:bio"`

	// Employer profile
	CompanyName        string `gorm:"column:company_name"`
	CompanyDescription string `gorm:"column:company_description"`
	Website            string `gorm:"column:website"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

// FullName joins the user's first and last name.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
