package store

import (
	"errors"

	"github.com/doodlesbykumbi/jobportal-in-go/pkg/model"
)

var (
	// ErrApplicationNotFound is returned when no application matches the
	// lookup.
	ErrApplicationNotFound = errors.New("application not found")
	// ErrDuplicateApplication is returned when an application already
	// exists for the (job, job seeker) pair. Implementations must detect
	// this atomically at insert time, via the schema's unique
	// constraint, so that two concurrent identical applies cannot both
	// succeed.
	ErrDuplicateApplication = errors.New("application already exists for this job")
)

// ApplicationStats are a job seeker's application counts by status.
type ApplicationStats struct {
	Total       int64 `json:"total"`
	Pending     int64 `json:"pending"`
	Reviewed    int64 `json:"reviewed"`
	Shortlisted int64 `json:"shortlisted"`
	Rejected    int64 `json:"rejected"`
	Hired       int64 `json:"hired"`
}

// ApplicationsStore abstracts application persistence.
type ApplicationsStore interface {
	// CreateApplication inserts a new application. Returns
	// ErrDuplicateApplication if one already exists for the (job, job
	// seeker) pair.
	CreateApplication(app *model.Application) error

	// FindApplicationByID fetches an application by id.
	FindApplicationByID(id string) (*model.Application, error)

	// UpdateApplication persists changes to an existing application.
	UpdateApplication(app *model.Application) error

	// DeleteApplication removes an application.
	DeleteApplication(id string) error

	// ListApplicationsBySeeker returns a seeker's applications, newest
	// first, with the total count.
	ListApplicationsBySeeker(seekerID string, limit, offset int) ([]model.Application, int64, error)

	// ListApplicationsByJob returns a job's applications, newest first,
	// with the total count.
	ListApplicationsByJob(jobID string, limit, offset int) ([]model.Application, int64, error)

	// ListApplicationsForEmployer returns the applications to every job
	// the employer owns, newest first, with the total count.
	ListApplicationsForEmployer(employerID string, limit, offset int) ([]model.Application, int64, error)

	// StatsForSeeker returns application counts by status for a seeker.
	StatsForSeeker(seekerID string) (*ApplicationStats, error)
}
