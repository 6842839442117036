package endpoints

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/yuin/goldmark"

	"github.com/doodlesbykumbi/jobportal-in-go/pkg/authz"
	"github.com/doodlesbykumbi/jobportal-in-go/pkg/identity"
	"github.com/doodlesbykumbi/jobportal-in-go/pkg/model"
	"github.com/doodlesbykumbi/jobportal-in-go/pkg/server"
	"github.com/doodlesbykumbi/jobportal-in-go/pkg/server/store"
)

// JobRequest is the body of job create and update calls.
type JobRequest struct {
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	CompanyName         string   `json:"companyName"`
	Location            string   `json:"location"`
	JobType             string   `json:"jobType"`
	ExperienceLevel     string   `json:"experienceLevel"`
	SalaryMin           *float64 `json:"salaryMin"`
	SalaryMax           *float64 `json:"salaryMax"`
	SalaryCurrency      string   `json:"salaryCurrency"`
	RequiredSkills      []string `json:"requiredSkills"`
	Tags                []string `json:"tags"`
	Category            string   `json:"category"`
	ApplicationDeadline string   `json:"applicationDeadline"`
}

// JobStatusRequest is the body of PATCH /jobs/{id}/status.
type JobStatusRequest struct {
	Status string `json:"status"`
}

// JobResponse is the API shape of a posting.
type JobResponse struct {
	ID                  string          `json:"id"`
	Title               string          `json:"title"`
	Description         string          `json:"description"`
	DescriptionHTML     string          `json:"descriptionHtml,omitempty"`
	CompanyName         string          `json:"companyName"`
	Location            string          `json:"location"`
	JobType             string          `json:"jobType"`
	ExperienceLevel     string          `json:"experienceLevel,omitempty"`
	SalaryMin           *float64        `json:"salaryMin,omitempty"`
	SalaryMax           *float64        `json:"salaryMax,omitempty"`
	SalaryCurrency      string          `json:"salaryCurrency,omitempty"`
	RequiredSkills      []string        `json:"requiredSkills,omitempty"`
	Tags                []string        `json:"tags,omitempty"`
	Category            string          `json:"category,omitempty"`
	ApplicationDeadline string          `json:"applicationDeadline,omitempty"`
	EmployerID          string          `json:"employerId"`
	Status              model.JobStatus `json:"status"`
	TotalApplications   int             `json:"totalApplications"`
	ViewCount           int             `json:"viewCount"`
	CreatedAt           time.Time       `json:"createdAt"`
}

func jobResponse(j *model.Job) JobResponse {
	return JobResponse{
		ID:                  j.ID,
		Title:               j.Title,
		Description:         j.Description,
		CompanyName:         j.CompanyName,
		Location:            j.Location,
		JobType:             j.JobType,
		ExperienceLevel:     j.ExperienceLevel,
		SalaryMin:           j.SalaryMin,
		SalaryMax:           j.SalaryMax,
		SalaryCurrency:      j.SalaryCurrency,
		RequiredSkills:      j.RequiredSkills,
		Tags:                j.Tags,
		Category:            j.Category,
		ApplicationDeadline: j.ApplicationDeadline,
		EmployerID:          j.EmployerID,
		Status:              j.Status,
		TotalApplications:   j.TotalApplications,
		ViewCount:           j.ViewCount,
		CreatedAt:           j.CreatedAt,
	}
}

func jobResponses(jobs []model.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, jobResponse(&jobs[i]))
	}
	return out
}

// RegisterJobsEndpoints registers all /jobs routes. Public browse routes
// are registered before the id-addressed ones so that mux matches them
// first.
func RegisterJobsEndpoints(s *server.Server) {
	router := s.Router

	router.HandleFunc("/jobs/public/all", handleListPublicJobs(s)).Methods("GET")
	router.HandleFunc("/jobs/public/search", handleSearchJobs(s)).Methods("GET")
	router.HandleFunc("/jobs/public/recent", handleRecentJobs(s)).Methods("GET")
	router.HandleFunc("/jobs/public/popular", handlePopularJobs(s)).Methods("GET")
	router.HandleFunc("/jobs/public/{id}", handleViewPublicJob(s)).Methods("GET")

	router.HandleFunc("/jobs/create", handleCreateJob(s)).Methods("POST")
	router.HandleFunc("/jobs/my-jobs", handleMyJobs(s)).Methods("GET")
	router.HandleFunc("/jobs/stats", handleJobStats(s)).Methods("GET")

	router.HandleFunc("/jobs/{id}", handleUpdateJob(s)).Methods("PUT")
	router.HandleFunc("/jobs/{id}", handleDeleteJob(s)).Methods("DELETE")
	router.HandleFunc("/jobs/{id}/status", handleChangeJobStatus(s)).Methods("PATCH")
}

func handleViewPublicJob(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		job, err := s.JobsStore.FindJobByID(mux.Vars(r)["id"])
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		if err := s.JobsStore.IncrementViewCount(job.ID); err != nil {
			log.Printf("Failed to bump view count for job %s: %v", job.ID, err)
		} else {
			job.ViewCount++
		}

		resp := jobResponse(job)
		if s.Config.RenderMarkdown {
			var buf bytes.Buffer
			if err := goldmark.Convert([]byte(job.Description), &buf); err == nil {
				resp.DescriptionHTML = buf.String()
			}
		}

		respondWithJSON(w, http.StatusOK, resp)
	}
}

func handleListPublicJobs(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, offset := pagination(r, s.Config)
		jobs, total, err := s.JobsStore.ListActiveJobs(limit, offset)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, pagedResponse{Items: jobResponses(jobs), Total: total})
	}
}

func handleSearchJobs(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		search := store.JobSearch{
			Title:    query.Get("title"),
			Location: query.Get("location"),
			JobType:  query.Get("jobType"),
		}

		limit, offset := pagination(r, s.Config)
		jobs, total, err := s.JobsStore.SearchJobs(search, limit, offset)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, pagedResponse{Items: jobResponses(jobs), Total: total})
	}
}

func handleRecentJobs(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobs, err := s.JobsStore.ListRecentJobs(s.Config.RecentJobsLimit)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, jobResponses(jobs))
	}
}

func handlePopularJobs(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 10
		if v := r.URL.Query().Get("limit"); v != "" {
			if i, err := strconv.Atoi(v); err == nil && i > 0 {
				limit = i
			}
		}
		if limit > s.Config.APIPageSizeMax {
			limit = s.Config.APIPageSizeMax
		}

		jobs, err := s.JobsStore.ListPopularJobs(limit)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, jobResponses(jobs))
	}
}

func handleCreateJob(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())
		if err := authz.Authorize(id, authz.ActionJobCreate, nil); err != nil {
			respondWithDomainError(w, err)
			return
		}

		var req JobRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		defer func() { _ = r.Body.Close() }()

		if req.Title == "" || req.Description == "" {
			respondWithError(w, http.StatusBadRequest, "Title and description are required")
			return
		}

		job := &model.Job{
			Title:               req.Title,
			Description:         req.Description,
			CompanyName:         req.CompanyName,
			Location:            req.Location,
			JobType:             req.JobType,
			ExperienceLevel:     req.ExperienceLevel,
			SalaryMin:           req.SalaryMin,
			SalaryMax:           req.SalaryMax,
			SalaryCurrency:      req.SalaryCurrency,
			RequiredSkills:      req.RequiredSkills,
			Tags:                req.Tags,
			Category:            req.Category,
			ApplicationDeadline: req.ApplicationDeadline,
			EmployerID:          id.UserID,
			Status:              model.JobStatusActive,
		}
		if err := s.JobsStore.CreateJob(job); err != nil {
			respondWithDomainError(w, err)
			return
		}

		respondWithJSON(w, http.StatusCreated, jobResponse(job))
	}
}

func handleMyJobs(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())
		if err := authz.Authorize(id, authz.ActionJobListOwn, nil); err != nil {
			respondWithDomainError(w, err)
			return
		}

		limit, offset := pagination(r, s.Config)
		jobs, total, err := s.JobsStore.ListJobsByEmployer(id.UserID, limit, offset)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, pagedResponse{Items: jobResponses(jobs), Total: total})
	}
}

func handleJobStats(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())
		if err := authz.Authorize(id, authz.ActionJobViewStats, nil); err != nil {
			respondWithDomainError(w, err)
			return
		}

		stats, err := s.JobsStore.StatsForEmployer(id.UserID)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, stats)
	}
}

func handleUpdateJob(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		job, err := s.JobsStore.FindJobByID(mux.Vars(r)["id"])
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		id, _ := identity.Get(r.Context())
		resource := &authz.Resource{Kind: authz.KindJob, OwnerID: job.EmployerID}
		if err := authz.Authorize(id, authz.ActionJobUpdate, resource); err != nil {
			respondWithDomainError(w, err)
			return
		}

		var req JobRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		defer func() { _ = r.Body.Close() }()

		job.Title = req.Title
		job.Description = req.Description
		job.CompanyName = req.CompanyName
		job.Location = req.Location
		job.JobType = req.JobType
		job.ExperienceLevel = req.ExperienceLevel
		job.SalaryMin = req.SalaryMin
		job.SalaryMax = req.SalaryMax
		job.SalaryCurrency = req.SalaryCurrency
		job.RequiredSkills = req.RequiredSkills
		job.Tags = req.Tags
		job.Category = req.Category
		job.ApplicationDeadline = req.ApplicationDeadline

		if err := s.JobsStore.UpdateJob(job); err != nil {
			respondWithDomainError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, jobResponse(job))
	}
}

func handleDeleteJob(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		job, err := s.JobsStore.FindJobByID(mux.Vars(r)["id"])
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		id, _ := identity.Get(r.Context())
		resource := &authz.Resource{Kind: authz.KindJob, OwnerID: job.EmployerID}
		if err := authz.Authorize(id, authz.ActionJobDelete, resource); err != nil {
			respondWithDomainError(w, err)
			return
		}

		if err := s.JobsStore.DeleteJob(job.ID); err != nil {
			respondWithDomainError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func handleChangeJobStatus(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		job, err := s.JobsStore.FindJobByID(mux.Vars(r)["id"])
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		id, _ := identity.Get(r.Context())
		resource := &authz.Resource{Kind: authz.KindJob, OwnerID: job.EmployerID}
		if err := authz.Authorize(id, authz.ActionJobChangeStatus, resource); err != nil {
			respondWithDomainError(w, err)
			return
		}

		var req JobStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		defer func() { _ = r.Body.Close() }()

		status, err := model.JobStatusString(req.Status)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Status must be ACTIVE, CLOSED, or DRAFT")
			return
		}

		job.Status = status
		if err := s.JobsStore.UpdateJob(job); err != nil {
			respondWithDomainError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, jobResponse(job))
	}
}
