package audit

import "fmt"

// LoginEvent represents a login attempt
type LoginEvent struct {
	Email        string
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e LoginEvent) MessageID() string {
	return "login"
}

func (e LoginEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s successfully logged in", e.Email)
	}
	msg := fmt.Sprintf("%s failed to log in", e.Email)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e LoginEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e LoginEvent) Facility() int {
	return FacilityAuthPriv
}

func (e LoginEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.Email,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "login",
			"result":    result,
		},
	}
}

// SignupEvent represents a new account registration
type SignupEvent struct {
	Email    string
	Role     string
	ClientIP string
}

func (e SignupEvent) MessageID() string {
	return "signup"
}

func (e SignupEvent) Message() string {
	return fmt.Sprintf("%s signed up with role %s", e.Email, e.Role)
}

func (e SignupEvent) Severity() Severity {
	return SeverityInfo
}

func (e SignupEvent) Facility() int {
	return FacilityAuthPriv
}

func (e SignupEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.Email,
			"role": e.Role,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "signup",
			"result":    "success",
		},
	}
}

// ApplicationEvent represents a change to a job application: an apply,
// a status review or a withdrawal.
type ApplicationEvent struct {
	UserID        string
	ClientIP      string
	ApplicationID string
	JobID         string
	Operation     string // "apply", "review", "withdraw"
	Status        string
	Success       bool
	ErrorMessage  string
}

func (e ApplicationEvent) MessageID() string {
	return "application"
}

func (e ApplicationEvent) Message() string {
	subject := "application " + e.ApplicationID
	if e.ApplicationID == "" {
		subject = "job " + e.JobID
	}
	verb := e.Operation
	if e.Status != "" {
		verb = fmt.Sprintf("%s (%s)", e.Operation, e.Status)
	}
	if e.Success {
		return fmt.Sprintf("%s performed %s on %s", e.UserID, verb, subject)
	}
	msg := fmt.Sprintf("%s tried to perform %s on %s", e.UserID, verb, subject)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e ApplicationEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e ApplicationEvent) Facility() int {
	return FacilityAuth
}

func (e ApplicationEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	sd := map[string]map[string]string{
		SDIDAuth: {
			"user": e.UserID,
		},
		SDIDSubject: {
			"application": e.ApplicationID,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": e.Operation,
			"result":    result,
		},
	}
	if e.JobID != "" {
		sd[SDIDSubject]["job"] = e.JobID
	}
	if e.Status != "" {
		sd[SDIDAction]["status"] = e.Status
	}
	return sd
}
