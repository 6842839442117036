package lifecycle

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/doodlesbykumbi/jobportal-in-go/pkg/authz"
	"github.com/doodlesbykumbi/jobportal-in-go/pkg/identity"
	"github.com/doodlesbykumbi/jobportal-in-go/pkg/model"
	"github.com/doodlesbykumbi/jobportal-in-go/pkg/server/store"
)

var (
	// ErrJobNotOpen is returned when applying to a job whose status is
	// not ACTIVE.
	ErrJobNotOpen = errors.New("job is not accepting applications")
	// ErrNotWithdrawable is returned when withdrawing an application
	// that has left the PENDING state.
	ErrNotWithdrawable = errors.New("application has already been reviewed")
	// ErrInvalidStatus is returned for unrecognized status literals.
	ErrInvalidStatus = errors.New("invalid application status")
)

// ApplyRequest carries the job seeker's side of a new application.
type ApplyRequest struct {
	CoverLetter       string
	ResumeURL         string
	ExpectedSalary    string
	AvailabilityDate  string
	WillingToRelocate bool
}

// Service drives the application lifecycle. Every transition passes the
// authorization policy before any state is touched; a denied request
// mutates nothing.
type Service struct {
	jobs store.JobsStore
	apps store.ApplicationsStore
}

// NewService creates a lifecycle service over the given stores.
func NewService(jobs store.JobsStore, apps store.ApplicationsStore) *Service {
	return &Service{jobs: jobs, apps: apps}
}

// Apply creates a PENDING application from id to the given job and bumps
// the job's application counter. The job must be ACTIVE, and at most one
// application may exist per (job, job seeker) pair; the store's unique
// constraint makes the duplicate check atomic with the insert.
func (s *Service) Apply(id *identity.Identity, jobID string, req ApplyRequest) (*model.Application, error) {
	if err := authz.Authorize(id, authz.ActionApplicationApply, nil); err != nil {
		return nil, err
	}

	job, err := s.jobs.FindJobByID(jobID)
	if err != nil {
		return nil, err
	}

	if job.Status != model.JobStatusActive {
		return nil, ErrJobNotOpen
	}

	app := &model.Application{
		JobID:             job.ID,
		JobSeekerID:       id.UserID,
		CoverLetter:       req.CoverLetter,
		ResumeURL:         req.ResumeURL,
		ExpectedSalary:    req.ExpectedSalary,
		AvailabilityDate:  req.AvailabilityDate,
		WillingToRelocate: req.WillingToRelocate,
		Status:            model.ApplicationStatusPending,
	}

	if err := s.apps.CreateApplication(app); err != nil {
		return nil, err
	}

	// The application is already persisted; a failed counter bump must
	// not turn a successful apply into an error.
	if err := s.jobs.AdjustApplicationCount(job.ID, 1); err != nil {
		log.Printf("Failed to bump application count for job %s: %v", job.ID, err)
	}

	return app, nil
}

// UpdateStatus moves an application to the named status on behalf of the
// employer who owns the referenced job. The first transition out of
// PENDING stamps ReviewedAt; re-entering a non-PENDING state never
// re-stamps it.
func (s *Service) UpdateStatus(id *identity.Identity, appID, statusLiteral string, employerNotes *string) (*model.Application, error) {
	app, err := s.apps.FindApplicationByID(appID)
	if err != nil {
		return nil, err
	}

	job, err := s.jobs.FindJobByID(app.JobID)
	if err != nil {
		return nil, err
	}

	resource := &authz.Resource{Kind: authz.KindApplication, OwnerID: job.EmployerID}
	if err := authz.Authorize(id, authz.ActionApplicationUpdateStatus, resource); err != nil {
		return nil, err
	}

	status, err := model.ApplicationStatusString(statusLiteral)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", statusLiteral, ErrInvalidStatus)
	}

	if status != model.ApplicationStatusPending && app.ReviewedAt == nil {
		now := time.Now()
		app.ReviewedAt = &now
	}
	app.Status = status
	if employerNotes != nil {
		app.EmployerNotes = *employerNotes
	}

	if err := s.apps.UpdateApplication(app); err != nil {
		return nil, err
	}

	return app, nil
}

// Withdraw deletes a PENDING application on behalf of the job seeker who
// owns it and decrements the job's application counter. Applications
// that have left PENDING cannot be withdrawn.
func (s *Service) Withdraw(id *identity.Identity, appID string) error {
	app, err := s.apps.FindApplicationByID(appID)
	if err != nil {
		return err
	}

	resource := &authz.Resource{Kind: authz.KindApplication, OwnerID: app.JobSeekerID}
	if err := authz.Authorize(id, authz.ActionApplicationWithdraw, resource); err != nil {
		return err
	}

	if app.Status != model.ApplicationStatusPending {
		return ErrNotWithdrawable
	}

	if err := s.apps.DeleteApplication(app.ID); err != nil {
		return err
	}

	// Floored at zero by the store; as with Apply, the withdrawal has
	// happened whether or not the counter keeps up.
	if err := s.jobs.AdjustApplicationCount(app.JobID, -1); err != nil {
		log.Printf("Failed to drop application count for job %s: %v", app.JobID, err)
	}

	return nil
}
