package gorm

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/doodlesbykumbi/jobportal-in-go/pkg/model"
	"github.com/doodlesbykumbi/jobportal-in-go/pkg/server/store"
)

// Ensure ApplicationsStore implements store.ApplicationsStore
var _ store.ApplicationsStore = (*ApplicationsStore)(nil)

// ApplicationsStore implements store.ApplicationsStore using GORM
type ApplicationsStore struct {
	db *gorm.DB
}

// NewApplicationsStore creates a new ApplicationsStore
func NewApplicationsStore(db *gorm.DB) *ApplicationsStore {
	return &ApplicationsStore{db: db}
}

// CreateApplication inserts a new application. The applications table
// carries UNIQUE(job_id, job_seeker_id), so the duplicate check and the
// insert are one atomic statement; concurrent identical applies cannot
// both succeed.
func (s *ApplicationsStore) CreateApplication(app *model.Application) error {
	if app.ID == "" {
		app.ID = uuid.NewString()
	}

	err := s.db.Create(app).Error
	if isUniqueViolation(err) {
		return store.ErrDuplicateApplication
	}
	return err
}

// FindApplicationByID fetches an application by id.
func (s *ApplicationsStore) FindApplicationByID(id string) (*model.Application, error) {
	var app model.Application
	err := s.db.Where("id = ?", id).First(&app).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrApplicationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// UpdateApplication persists changes to an existing application.
func (s *ApplicationsStore) UpdateApplication(app *model.Application) error {
	return s.db.Save(app).Error
}

// DeleteApplication removes an application.
func (s *ApplicationsStore) DeleteApplication(id string) error {
	result := s.db.Where("id = ?", id).Delete(&model.Application{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return store.ErrApplicationNotFound
	}
	return nil
}

// ListApplicationsBySeeker returns a seeker's applications, newest first.
func (s *ApplicationsStore) ListApplicationsBySeeker(seekerID string, limit, offset int) ([]model.Application, int64, error) {
	return s.listApplications(s.db.Where("job_seeker_id = ?", seekerID), limit, offset)
}

// ListApplicationsByJob returns a job's applications, newest first.
func (s *ApplicationsStore) ListApplicationsByJob(jobID string, limit, offset int) ([]model.Application, int64, error) {
	return s.listApplications(s.db.Where("job_id = ?", jobID), limit, offset)
}

// ListApplicationsForEmployer returns applications to every job the
// employer owns, newest first.
func (s *ApplicationsStore) ListApplicationsForEmployer(employerID string, limit, offset int) ([]model.Application, int64, error) {
	query := s.db.
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.employer_id = ?", employerID)
	return s.listApplications(query, limit, offset)
}

// StatsForSeeker returns application counts by status for a seeker.
func (s *ApplicationsStore) StatsForSeeker(seekerID string) (*store.ApplicationStats, error) {
	stats := &store.ApplicationStats{}

	counts := []struct {
		status model.ApplicationStatus
		target *int64
	}{
		{model.ApplicationStatusPending, &stats.Pending},
		{model.ApplicationStatusReviewed, &stats.Reviewed},
		{model.ApplicationStatusShortlisted, &stats.Shortlisted},
		{model.ApplicationStatusRejected, &stats.Rejected},
		{model.ApplicationStatusHired, &stats.Hired},
	}

	err := s.db.Model(&model.Application{}).
		Where("job_seeker_id = ?", seekerID).
		Count(&stats.Total).Error
	if err != nil {
		return nil, err
	}

	for _, c := range counts {
		err := s.db.Model(&model.Application{}).
			Where("job_seeker_id = ? AND status = ?", seekerID, c.status).
			Count(c.target).Error
		if err != nil {
			return nil, err
		}
	}

	return stats, nil
}

func (s *ApplicationsStore) listApplications(query *gorm.DB, limit, offset int) ([]model.Application, int64, error) {
	var total int64
	if err := query.Model(&model.Application{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var apps []model.Application
	err := query.
		Order("applied_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&apps).Error
	if err != nil {
		return nil, 0, err
	}

	return apps, total, nil
}
