package store

import (
	"errors"

	"github.com/doodlesbykumbi/jobportal-in-go/pkg/model"
)

// ErrJobNotFound is returned when no job matches the lookup.
var ErrJobNotFound = errors.New("job not found")

// JobStats are an employer's posting counts by status.
type JobStats struct {
	Total  int64 `json:"total"`
	Active int64 `json:"active"`
	Closed int64 `json:"closed"`
	Draft  int64 `json:"draft"`
}

// JobSearch are the optional public search filters. Empty fields match
// everything.
type JobSearch struct {
	Title    string
	Location string
	JobType  string
}

// JobsStore abstracts job posting persistence.
type JobsStore interface {
	// CreateJob inserts a new posting.
	CreateJob(job *model.Job) error

	// FindJobByID fetches a posting by id.
	FindJobByID(id string) (*model.Job, error)

	// UpdateJob persists changes to an existing posting.
	UpdateJob(job *model.Job) error

	// DeleteJob removes a posting.
	DeleteJob(id string) error

	// ListActiveJobs returns ACTIVE postings, newest first, with the
	// total count of matches.
	ListActiveJobs(limit, offset int) ([]model.Job, int64, error)

	// SearchJobs returns ACTIVE postings matching the filters, newest
	// first, with the total count of matches.
	SearchJobs(search JobSearch, limit, offset int) ([]model.Job, int64, error)

	// ListJobsByEmployer returns an employer's postings, newest first,
	// with the total count.
	ListJobsByEmployer(employerID string, limit, offset int) ([]model.Job, int64, error)

	// ListRecentJobs returns the newest ACTIVE postings.
	ListRecentJobs(limit int) ([]model.Job, error)

	// ListPopularJobs returns ACTIVE postings with the highest view
	// counts.
	ListPopularJobs(limit int) ([]model.Job, error)

	// IncrementViewCount bumps a posting's view counter in place.
	IncrementViewCount(id string) error

	// AdjustApplicationCount adds delta to a posting's application
	// counter, floored at zero.
	AdjustApplicationCount(id string, delta int) error

	// StatsForEmployer returns posting counts by status for an employer.
	StatsForEmployer(employerID string) (*JobStats, error)
}
