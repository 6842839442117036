package lifecycle

import (
	"github.com/stretchr/testify/mock"

	"github.com/doodlesbykumbi/jobportal-in-go/pkg/model"
	"github.com/doodlesbykumbi/jobportal-in-go/pkg/server/store"
)

// MockJobsStore implements store.JobsStore for testing using testify/mock
type MockJobsStore struct {
	mock.Mock
}

func (m *MockJobsStore) CreateJob(job *model.Job) error {
	args := m.Called(job)
	return args.Error(0)
}

func (m *MockJobsStore) FindJobByID(id string) (*model.Job, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Job), args.Error(1)
}

func (m *MockJobsStore) UpdateJob(job *model.Job) error {
	args := m.Called(job)
	return args.Error(0)
}

func (m *MockJobsStore) DeleteJob(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockJobsStore) ListActiveJobs(limit, offset int) ([]model.Job, int64, error) {
	args := m.Called(limit, offset)
	return args.Get(0).([]model.Job), args.Get(1).(int64), args.Error(2)
}

func (m *MockJobsStore) SearchJobs(search store.JobSearch, limit, offset int) ([]model.Job, int64, error) {
	args := m.Called(search, limit, offset)
	return args.Get(0).([]model.Job), args.Get(1).(int64), args.Error(2)
}

func (m *MockJobsStore) ListJobsByEmployer(employerID string, limit, offset int) ([]model.Job, int64, error) {
	args := m.Called(employerID, limit, offset)
	return args.Get(0).([]model.Job), args.Get(1).(int64), args.Error(2)
}

func (m *MockJobsStore) ListRecentJobs(limit int) ([]model.Job, error) {
	args := m.Called(limit)
	return args.Get(0).([]model.Job), args.Error(1)
}

func (m *MockJobsStore) ListPopularJobs(limit int) ([]model.Job, error) {
	args := m.Called(limit)
	return args.Get(0).([]model.Job), args.Error(1)
}

func (m *MockJobsStore) IncrementViewCount(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockJobsStore) AdjustApplicationCount(id string, delta int) error {
	args := m.Called(id, delta)
	return args.Error(0)
}

func (m *MockJobsStore) StatsForEmployer(employerID string) (*store.JobStats, error) {
	args := m.Called(employerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.JobStats), args.Error(1)
}

// MockApplicationsStore implements store.ApplicationsStore for testing
// using testify/mock
type MockApplicationsStore struct {
	mock.Mock
}

func (m *MockApplicationsStore) CreateApplication(app *model.Application) error {
	args := m.Called(app)
	return args.Error(0)
}

func (m *MockApplicationsStore) FindApplicationByID(id string) (*model.Application, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Application), args.Error(1)
}

func (m *MockApplicationsStore) UpdateApplication(app *model.Application) error {
	args := m.Called(app)
	return args.Error(0)
}

func (m *MockApplicationsStore) DeleteApplication(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockApplicationsStore) ListApplicationsBySeeker(seekerID string, limit, offset int) ([]model.Application, int64, error) {
	args := m.Called(seekerID, limit, offset)
	return args.Get(0).([]model.Application), args.Get(1).(int64), args.Error(2)
}

func (m *MockApplicationsStore) ListApplicationsByJob(jobID string, limit, offset int) ([]model.Application, int64, error) {
	args := m.Called(jobID, limit, offset)
	return args.Get(0).([]model.Application), args.Get(1).(int64), args.Error(2)
}

func (m *MockApplicationsStore) ListApplicationsForEmployer(employerID string, limit, offset int) ([]model.Application, int64, error) {
	args := m.Called(employerID, limit, offset)
	return args.Get(0).([]model.Application), args.Get(1).(int64), args.Error(2)
}

func (m *MockApplicationsStore) StatsForSeeker(seekerID string) (*store.ApplicationStats, error) {
	args := m.Called(seekerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.ApplicationStats), args.Error(1)
}
