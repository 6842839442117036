package model

import (
	"time"
)

//go:generate go run github.com/dmarkham/enumer -type ApplicationStatus -trimprefix ApplicationStatus -transform upper -json -sql -output application_status.gen.go

// ApplicationStatus is the review state of an application. PENDING is the
// initial state; every other state is terminal.
type ApplicationStatus int

const (
	ApplicationStatusPending ApplicationStatus = iota
	ApplicationStatusReviewed
	ApplicationStatusShortlisted
	ApplicationStatusRejected
	ApplicationStatusHired
)

// Terminal reports whether no further status transition is defined out of s.
func (s ApplicationStatus) Terminal() bool {
	return s != ApplicationStatusPending
}

// Application represents one job seeker's application to one job. At most
// one application may exist per (job, job seeker) pair; the schema
// enforces this with a unique constraint.
type Application struct {
	ID string `gorm:"column:id;primaryKey"`

	JobID       string `gorm:"column:job_id;not null;index"`
	JobSeekerID string `gorm:"column:job_seeker_id;not null;index"`

	CoverLetter string `gorm:"column:cover_letter;not null"`
	ResumeURL   string `gorm:"column:resume_url"`

	Status        ApplicationStatus `gorm:"column:status;not null"`
	EmployerNotes string            `gorm:"column:employer_notes"`

	ExpectedSalary    string `gorm:"column:expected_salary"`
	AvailabilityDate  string `gorm:"column:availability_date"`
	WillingToRelocate bool   `gorm:"column:willing_to_relocate;not null"`

	AppliedAt time.Time `gorm:"column:applied_at;autoCreateTime"`
	// ReviewedAt is stamped exactly once, on the first transition out of
	// PENDING.
	ReviewedAt *time.Time `gorm:"column:reviewed_at"`
	UpdatedAt  time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Application) TableName() string {
	return "applications"
}
