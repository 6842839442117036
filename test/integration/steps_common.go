package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/cucumber/godog"
)

// testPassword is the password used for every account created by the steps
const testPassword = "integration-pass-123"

// StepsContext holds state shared between step definitions
type StepsContext struct {
	tc            *TestContext
	response      *http.Response
	responseBody  []byte
	tokens        map[string]string
	jobID         string
	applicationID string
}

// NewStepsContext creates a new steps context
func NewStepsContext(tc *TestContext) *StepsContext {
	return &StepsContext{
		tc:     tc,
		tokens: make(map[string]string),
	}
}

// RegisterSteps registers all step definitions
func (s *StepsContext) RegisterSteps(sc *godog.ScenarioContext) {
	// Background steps
	sc.Step(`^the job portal server is running$`, s.theServerIsRunning)
	sc.Step(`^an employer "([^"]*)" is signed up$`, s.anEmployerIsSignedUp)
	sc.Step(`^a job seeker "([^"]*)" is signed up$`, s.aJobSeekerIsSignedUp)

	// Authentication steps
	sc.Step(`^"([^"]*)" logs in with the correct password$`, s.logsInWithCorrectPassword)
	sc.Step(`^"([^"]*)" logs in with password "([^"]*)"$`, s.logsInWithPassword)

	// Job steps
	sc.Step(`^"([^"]*)" creates a job titled "([^"]*)"$`, s.createsAJobTitled)
	sc.Step(`^"([^"]*)" closes the job$`, s.closesTheJob)
	sc.Step(`^anyone can view the job without logging in$`, s.anyoneCanViewTheJob)

	// Application steps
	sc.Step(`^"([^"]*)" applies to the job$`, s.appliesToTheJob)
	sc.Step(`^"([^"]*)" sets the application status to "([^"]*)"$`, s.setsTheApplicationStatusTo)
	sc.Step(`^"([^"]*)" withdraws the application$`, s.withdrawsTheApplication)

	// Response steps
	sc.Step(`^the response status should be (\d+)$`, s.theResponseStatusShouldBe)
	sc.Step(`^the response should contain a token$`, s.theResponseShouldContainAToken)

	// Database assertion steps
	sc.Step(`^the application status should be "([^"]*)"$`, s.theApplicationStatusShouldBe)
	sc.Step(`^the application should have a review timestamp$`, s.theApplicationShouldHaveAReviewTimestamp)
	sc.Step(`^the application should be gone$`, s.theApplicationShouldBeGone)
	sc.Step(`^the job should have (\d+) total applications?$`, s.theJobShouldHaveTotalApplications)
}

// doRequest sends a request to the server, optionally authenticated as the
// user identified by email. An empty email sends the request anonymously.
func (s *StepsContext) doRequest(method, path string, body interface{}, email string) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, s.tc.ServerURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if email != "" {
		token, ok := s.tokens[email]
		if !ok {
			return fmt.Errorf("no token for %q, sign up first", email)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	s.response, err = s.tc.HTTPClient.Do(req)
	if err != nil {
		return err
	}

	s.responseBody, err = io.ReadAll(s.response.Body)
	_ = s.response.Body.Close()
	return err
}

// Background steps

func (s *StepsContext) theServerIsRunning() error {
	// Server is already running via TestContext
	return nil
}

func (s *StepsContext) signUp(email, role string) error {
	err := s.doRequest("POST", "/auth/signup", map[string]string{
		"firstName": "Test",
		"lastName":  "User",
		"email":     email,
		"password":  testPassword,
		"role":      role,
	}, "")
	if err != nil {
		return err
	}

	if s.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("signup for %s failed with status %d: %s", email, s.response.StatusCode, string(s.responseBody))
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(s.responseBody, &body); err != nil {
		return fmt.Errorf("failed to parse signup response: %w", err)
	}
	if body.Token == "" {
		return fmt.Errorf("signup for %s returned no token", email)
	}

	s.tokens[email] = body.Token
	return nil
}

func (s *StepsContext) anEmployerIsSignedUp(email string) error {
	return s.signUp(email, "EMPLOYER")
}

func (s *StepsContext) aJobSeekerIsSignedUp(email string) error {
	return s.signUp(email, "JOB_SEEKER")
}

// Authentication steps

func (s *StepsContext) logsInWithCorrectPassword(email string) error {
	return s.logsInWithPassword(email, testPassword)
}

func (s *StepsContext) logsInWithPassword(email, password string) error {
	err := s.doRequest("POST", "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, "")
	if err != nil {
		return err
	}

	if s.response.StatusCode == http.StatusOK {
		var body struct {
			Token string `json:"token"`
		}
		if err := json.Unmarshal(s.responseBody, &body); err == nil && body.Token != "" {
			s.tokens[email] = body.Token
		}
	}
	return nil
}

// Job steps

func (s *StepsContext) createsAJobTitled(email, title string) error {
	err := s.doRequest("POST", "/jobs/create", map[string]string{
		"title":       title,
		"description": "An integration test job posting.",
		"location":    "Remote",
	}, email)
	if err != nil {
		return err
	}

	if s.response.StatusCode == http.StatusCreated {
		var body struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(s.responseBody, &body); err != nil {
			return fmt.Errorf("failed to parse job response: %w", err)
		}
		s.jobID = body.ID
	}
	return nil
}

func (s *StepsContext) closesTheJob(email string) error {
	return s.doRequest("PATCH", "/jobs/"+s.jobID+"/status", map[string]string{
		"status": "CLOSED",
	}, email)
}

func (s *StepsContext) anyoneCanViewTheJob() error {
	if err := s.doRequest("GET", "/jobs/public/"+s.jobID, nil, ""); err != nil {
		return err
	}
	if s.response.StatusCode != http.StatusOK {
		return fmt.Errorf("expected job to be publicly viewable, got status %d", s.response.StatusCode)
	}
	return nil
}

// Application steps

func (s *StepsContext) appliesToTheJob(email string) error {
	err := s.doRequest("POST", "/applications/apply", map[string]string{
		"jobId":       s.jobID,
		"coverLetter": "Please consider my application.",
	}, email)
	if err != nil {
		return err
	}

	if s.response.StatusCode == http.StatusCreated {
		var body struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(s.responseBody, &body); err != nil {
			return fmt.Errorf("failed to parse application response: %w", err)
		}
		s.applicationID = body.ID
	}
	return nil
}

func (s *StepsContext) setsTheApplicationStatusTo(email, status string) error {
	return s.doRequest("PATCH", "/applications/"+s.applicationID+"/status", map[string]string{
		"status": status,
	}, email)
}

func (s *StepsContext) withdrawsTheApplication(email string) error {
	return s.doRequest("DELETE", "/applications/"+s.applicationID+"/withdraw", nil, email)
}

// Response steps

func (s *StepsContext) theResponseStatusShouldBe(expectedStatus int) error {
	if s.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d: %s", expectedStatus, s.response.StatusCode, string(s.responseBody))
	}
	return nil
}

func (s *StepsContext) theResponseShouldContainAToken() error {
	var body struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(s.responseBody, &body); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	if body.Token == "" {
		return fmt.Errorf("missing 'token' field in response")
	}
	return nil
}

// Database assertion steps

func (s *StepsContext) theApplicationStatusShouldBe(expected string) error {
	var status string
	if err := s.tc.DB.Raw(`SELECT status FROM applications WHERE id = ?`, s.applicationID).Scan(&status).Error; err != nil {
		return err
	}
	if status != expected {
		return fmt.Errorf("expected application status %q, got %q", expected, status)
	}
	return nil
}

func (s *StepsContext) theApplicationShouldHaveAReviewTimestamp() error {
	var count int64
	if err := s.tc.DB.Raw(`SELECT COUNT(*) FROM applications WHERE id = ? AND reviewed_at IS NOT NULL`, s.applicationID).Scan(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("application %s has no review timestamp", s.applicationID)
	}
	return nil
}

func (s *StepsContext) theApplicationShouldBeGone() error {
	var count int64
	if err := s.tc.DB.Raw(`SELECT COUNT(*) FROM applications WHERE id = ?`, s.applicationID).Scan(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("application %s still exists", s.applicationID)
	}
	return nil
}

func (s *StepsContext) theJobShouldHaveTotalApplications(expected int) error {
	var total int
	if err := s.tc.DB.Raw(`SELECT total_applications FROM jobs WHERE id = ?`, s.jobID).Scan(&total).Error; err != nil {
		return err
	}
	if total != expected {
		return fmt.Errorf("expected %d total applications, got %d", expected, total)
	}
	return nil
}
