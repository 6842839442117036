package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/doodlesbykumbi/jobportal-in-go/pkg/audit"
	"github.com/doodlesbykumbi/jobportal-in-go/pkg/authz"
	"github.com/doodlesbykumbi/jobportal-in-go/pkg/identity"
	"github.com/doodlesbykumbi/jobportal-in-go/pkg/lifecycle"
	"github.com/doodlesbykumbi/jobportal-in-go/pkg/model"
	"github.com/doodlesbykumbi/jobportal-in-go/pkg/server"
)

// ApplyRequest is the body of POST /applications/apply.
type ApplyRequest struct {
	JobID             string `json:"jobId"`
	CoverLetter       string `json:"coverLetter"`
	ResumeURL         string `json:"resumeUrl"`
	ExpectedSalary    string `json:"expectedSalary"`
	AvailabilityDate  string `json:"availabilityDate"`
	WillingToRelocate bool   `json:"willingToRelocate"`
}

// ApplicationStatusRequest is the body of PATCH /applications/{id}/status.
type ApplicationStatusRequest struct {
	Status        string  `json:"status"`
	EmployerNotes *string `json:"employerNotes"`
}

// ApplicationResponse is the API shape of an application.
type ApplicationResponse struct {
	ID                string                  `json:"id"`
	JobID             string                  `json:"jobId"`
	JobSeekerID       string                  `json:"jobSeekerId"`
	CoverLetter       string                  `json:"coverLetter"`
	ResumeURL         string                  `json:"resumeUrl,omitempty"`
	Status            model.ApplicationStatus `json:"status"`
	EmployerNotes     string                  `json:"employerNotes,omitempty"`
	ExpectedSalary    string                  `json:"expectedSalary,omitempty"`
	AvailabilityDate  string                  `json:"availabilityDate,omitempty"`
	WillingToRelocate bool                    `json:"willingToRelocate"`
	AppliedAt         time.Time               `json:"appliedAt"`
	ReviewedAt        *time.Time              `json:"reviewedAt,omitempty"`
}

func applicationResponse(a *model.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:                a.ID,
		JobID:             a.JobID,
		JobSeekerID:       a.JobSeekerID,
		CoverLetter:       a.CoverLetter,
		ResumeURL:         a.ResumeURL,
		Status:            a.Status,
		EmployerNotes:     a.EmployerNotes,
		ExpectedSalary:    a.ExpectedSalary,
		AvailabilityDate:  a.AvailabilityDate,
		WillingToRelocate: a.WillingToRelocate,
		AppliedAt:         a.AppliedAt,
		ReviewedAt:        a.ReviewedAt,
	}
}

func applicationResponses(apps []model.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(apps))
	for i := range apps {
		out = append(out, applicationResponse(&apps[i]))
	}
	return out
}

// RegisterApplicationsEndpoints registers all /applications routes.
func RegisterApplicationsEndpoints(s *server.Server) {
	router := s.Router

	router.HandleFunc("/applications/apply", handleApply(s)).Methods("POST")
	router.HandleFunc("/applications/my-applications", handleMyApplications(s)).Methods("GET")
	router.HandleFunc("/applications/my-jobs", handleApplicationsForMyJobs(s)).Methods("GET")
	router.HandleFunc("/applications/stats", handleApplicationStats(s)).Methods("GET")
	router.HandleFunc("/applications/job/{id}", handleApplicationsForJob(s)).Methods("GET")

	router.HandleFunc("/applications/{id}", handleViewApplication(s)).Methods("GET")
	router.HandleFunc("/applications/{id}/status", handleUpdateApplicationStatus(s)).Methods("PATCH")
	router.HandleFunc("/applications/{id}/withdraw", handleWithdrawApplication(s)).Methods("DELETE")
}

func handleApply(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ApplyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		defer func() { _ = r.Body.Close() }()

		if req.JobID == "" {
			respondWithError(w, http.StatusBadRequest, "jobId is required")
			return
		}

		id, _ := identity.Get(r.Context())
		app, err := s.Lifecycle.Apply(id, req.JobID, lifecycle.ApplyRequest{
			CoverLetter:       req.CoverLetter,
			ResumeURL:         req.ResumeURL,
			ExpectedSalary:    req.ExpectedSalary,
			AvailabilityDate:  req.AvailabilityDate,
			WillingToRelocate: req.WillingToRelocate,
		})
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		audit.Log(audit.ApplicationEvent{
			UserID:        id.UserID,
			ClientIP:      clientIP(r, s.Config),
			ApplicationID: app.ID,
			JobID:         app.JobID,
			Operation:     "apply",
			Success:       true,
		})

		respondWithJSON(w, http.StatusCreated, applicationResponse(app))
	}
}

func handleMyApplications(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())
		if err := authz.Authorize(id, authz.ActionApplicationListOwn, nil); err != nil {
			respondWithDomainError(w, err)
			return
		}

		limit, offset := pagination(r, s.Config)
		apps, total, err := s.ApplicationsStore.ListApplicationsBySeeker(id.UserID, limit, offset)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, pagedResponse{Items: applicationResponses(apps), Total: total})
	}
}

func handleApplicationsForMyJobs(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())
		if err := authz.Authorize(id, authz.ActionApplicationListForOwnJobs, nil); err != nil {
			respondWithDomainError(w, err)
			return
		}

		limit, offset := pagination(r, s.Config)
		apps, total, err := s.ApplicationsStore.ListApplicationsForEmployer(id.UserID, limit, offset)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, pagedResponse{Items: applicationResponses(apps), Total: total})
	}
}

func handleApplicationStats(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())
		if err := authz.Authorize(id, authz.ActionApplicationStats, nil); err != nil {
			respondWithDomainError(w, err)
			return
		}

		stats, err := s.ApplicationsStore.StatsForSeeker(id.UserID)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, stats)
	}
}

func handleApplicationsForJob(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		job, err := s.JobsStore.FindJobByID(mux.Vars(r)["id"])
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		id, _ := identity.Get(r.Context())
		resource := &authz.Resource{Kind: authz.KindJob, OwnerID: job.EmployerID}
		if err := authz.Authorize(id, authz.ActionApplicationListForJob, resource); err != nil {
			respondWithDomainError(w, err)
			return
		}

		limit, offset := pagination(r, s.Config)
		apps, total, err := s.ApplicationsStore.ListApplicationsByJob(job.ID, limit, offset)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, pagedResponse{Items: applicationResponses(apps), Total: total})
	}
}

func handleViewApplication(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		app, err := s.ApplicationsStore.FindApplicationByID(mux.Vars(r)["id"])
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		id, _ := identity.Get(r.Context())

		// An application is visible to its applicant and to the employer
		// who owns the referenced job.
		ownerID := app.JobSeekerID
		if id != nil && id.Role == identity.RoleEmployer {
			job, err := s.JobsStore.FindJobByID(app.JobID)
			if err != nil {
				respondWithDomainError(w, err)
				return
			}
			ownerID = job.EmployerID
		}

		resource := &authz.Resource{Kind: authz.KindApplication, OwnerID: ownerID}
		if err := authz.Authorize(id, authz.ActionApplicationView, resource); err != nil {
			// Hide whether the application exists from everyone else.
			if errors.Is(err, authz.ErrNotOwner) {
				respondWithError(w, http.StatusNotFound, "application not found")
				return
			}
			respondWithDomainError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, applicationResponse(app))
	}
}

func handleUpdateApplicationStatus(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ApplicationStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		defer func() { _ = r.Body.Close() }()

		id, _ := identity.Get(r.Context())
		appID := mux.Vars(r)["id"]
		app, err := s.Lifecycle.UpdateStatus(id, appID, req.Status, req.EmployerNotes)
		if err != nil {
			audit.Log(audit.ApplicationEvent{
				UserID:        auditUser(id),
				ClientIP:      clientIP(r, s.Config),
				ApplicationID: appID,
				Operation:     "review",
				Status:        req.Status,
				ErrorMessage:  err.Error(),
			})
			respondWithDomainError(w, err)
			return
		}

		audit.Log(audit.ApplicationEvent{
			UserID:        id.UserID,
			ClientIP:      clientIP(r, s.Config),
			ApplicationID: app.ID,
			JobID:         app.JobID,
			Operation:     "review",
			Status:        req.Status,
			Success:       true,
		})

		respondWithJSON(w, http.StatusOK, applicationResponse(app))
	}
}

func handleWithdrawApplication(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())
		appID := mux.Vars(r)["id"]
		if err := s.Lifecycle.Withdraw(id, appID); err != nil {
			audit.Log(audit.ApplicationEvent{
				UserID:        auditUser(id),
				ClientIP:      clientIP(r, s.Config),
				ApplicationID: appID,
				Operation:     "withdraw",
				ErrorMessage:  err.Error(),
			})
			respondWithDomainError(w, err)
			return
		}

		audit.Log(audit.ApplicationEvent{
			UserID:        id.UserID,
			ClientIP:      clientIP(r, s.Config),
			ApplicationID: appID,
			Operation:     "withdraw",
			Success:       true,
		})

		w.WriteHeader(http.StatusNoContent)
	}
}
