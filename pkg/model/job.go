package model

import (
	"time"

	"github.com/lib/pq"
)

//go:generate go run github.com/dmarkham/enumer -type JobStatus -trimprefix JobStatus -transform upper -json -sql -output job_status.gen.go

// JobStatus is the lifecycle state of a posting. Only ACTIVE jobs accept
// applications.
type JobStatus int

const (
	JobStatusActive JobStatus = iota
	JobStatusClosed
	JobStatusDraft
)

// Job represents a job posting owned by an employer.
type Job struct {
	ID          string `gorm:"column:id;primaryKey"`
	Title       string `gorm:"column:title;not null"`
	Description string `gorm:"column:description;not null"`
	CompanyName string `gorm:"column:company_name;not null"`
	Location    string `gorm:"column:location;not null"`

	JobType         string `gorm:"column:job_type;not null"`
	ExperienceLevel string `gorm:"column:experience_level"`

	SalaryMin      *float64 `gorm:"column:salary_min"`
	SalaryMax      *float64 `gorm:"column:salary_max"`
	SalaryCurrency string   `gorm:"column:salary_currency"`

	RequiredSkills pq.StringArray `gorm:"column:required_skills;type:text[]"`
	Tags           pq.StringArray `gorm:"column:tags;type:text[]"`
	Category       string         `gorm:"column:category"`

	ApplicationDeadline string `gorm:"column:application_deadline"`

	// EmployerID is the owning employer's user id. Ownership checks
	// compare against this column, never against request payloads.
	EmployerID string `gorm:"column:employer_id;not null;index"`

	Status JobStatus `gorm:"column:status;not null"`

	TotalApplications int `gorm:"column:total_applications;not null"`
	ViewCount         int `gorm:"column:view_count;not null"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Job) TableName() string {
	return "jobs"
}
