package gorm

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/doodlesbykumbi/jobportal-in-go/pkg/model"
	"github.com/doodlesbykumbi/jobportal-in-go/pkg/server/store"
)

// Ensure JobsStore implements store.JobsStore
var _ store.JobsStore = (*JobsStore)(nil)

// JobsStore implements store.JobsStore using GORM
type JobsStore struct {
	db *gorm.DB
}

// NewJobsStore creates a new JobsStore
func NewJobsStore(db *gorm.DB) *JobsStore {
	return &JobsStore{db: db}
}

// CreateJob inserts a new posting.
func (s *JobsStore) CreateJob(job *model.Job) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	return s.db.Create(job).Error
}

// FindJobByID fetches a posting by id.
func (s *JobsStore) FindJobByID(id string) (*model.Job, error) {
	var job model.Job
	err := s.db.Where("id = ?", id).First(&job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// UpdateJob persists changes to an existing posting.
func (s *JobsStore) UpdateJob(job *model.Job) error {
	return s.db.Save(job).Error
}

// DeleteJob removes a posting.
func (s *JobsStore) DeleteJob(id string) error {
	result := s.db.Where("id = ?", id).Delete(&model.Job{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return store.ErrJobNotFound
	}
	return nil
}

// ListActiveJobs returns ACTIVE postings, newest first.
func (s *JobsStore) ListActiveJobs(limit, offset int) ([]model.Job, int64, error) {
	return s.listJobs(s.db.Where("status = ?", model.JobStatusActive), limit, offset)
}

// SearchJobs returns ACTIVE postings matching the filters, newest first.
func (s *JobsStore) SearchJobs(search store.JobSearch, limit, offset int) ([]model.Job, int64, error) {
	query := s.db.Where("status = ?", model.JobStatusActive)
	if search.Title != "" {
		query = query.Where("title ILIKE ?", "%"+search.Title+"%")
	}
	if search.Location != "" {
		query = query.Where("location ILIKE ?", "%"+search.Location+"%")
	}
	if search.JobType != "" {
		query = query.Where("job_type = ?", search.JobType)
	}
	return s.listJobs(query, limit, offset)
}

// ListJobsByEmployer returns an employer's postings, newest first.
func (s *JobsStore) ListJobsByEmployer(employerID string, limit, offset int) ([]model.Job, int64, error) {
	return s.listJobs(s.db.Where("employer_id = ?", employerID), limit, offset)
}

// ListRecentJobs returns the newest ACTIVE postings.
func (s *JobsStore) ListRecentJobs(limit int) ([]model.Job, error) {
	var jobs []model.Job
	err := s.db.
		Where("status = ?", model.JobStatusActive).
		Order("created_at DESC").
		Limit(limit).
		Find(&jobs).Error
	return jobs, err
}

// ListPopularJobs returns the most viewed ACTIVE postings.
func (s *JobsStore) ListPopularJobs(limit int) ([]model.Job, error) {
	var jobs []model.Job
	err := s.db.
		Where("status = ?", model.JobStatusActive).
		Order("view_count DESC").
		Limit(limit).
		Find(&jobs).Error
	return jobs, err
}

// IncrementViewCount bumps the view counter in place, without touching
// updated_at.
func (s *JobsStore) IncrementViewCount(id string) error {
	return s.db.Model(&model.Job{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

// AdjustApplicationCount adds delta to the application counter, floored
// at zero.
func (s *JobsStore) AdjustApplicationCount(id string, delta int) error {
	return s.db.Model(&model.Job{}).
		Where("id = ?", id).
		UpdateColumn("total_applications", gorm.Expr("GREATEST(total_applications + ?, 0)", delta)).Error
}

// StatsForEmployer returns posting counts by status for an employer.
func (s *JobsStore) StatsForEmployer(employerID string) (*store.JobStats, error) {
	stats := &store.JobStats{}

	counts := []struct {
		status model.JobStatus
		target *int64
	}{
		{model.JobStatusActive, &stats.Active},
		{model.JobStatusClosed, &stats.Closed},
		{model.JobStatusDraft, &stats.Draft},
	}

	err := s.db.Model(&model.Job{}).
		Where("employer_id = ?", employerID).
		Count(&stats.Total).Error
	if err != nil {
		return nil, err
	}

	for _, c := range counts {
		err := s.db.Model(&model.Job{}).
			Where("employer_id = ? AND status = ?", employerID, c.status).
			Count(c.target).Error
		if err != nil {
			return nil, err
		}
	}

	return stats, nil
}

func (s *JobsStore) listJobs(query *gorm.DB, limit, offset int) ([]model.Job, int64, error) {
	var total int64
	if err := query.Model(&model.Job{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []model.Job
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}
