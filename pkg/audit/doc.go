// Package audit provides audit logging for security-relevant operations.
//
// Events cover signups, login attempts and changes to job applications.
// Each event is written to stdout in RFC5424 syslog format, and optionally
// persisted to the database named by AUDIT_DATABASE_URL.
//
// # Usage
//
//	audit.Log(audit.LoginEvent{
//		Email:    email,
//		ClientIP: ip,
//		Success:  true,
//	})
//
// Set JOBPORTAL_AUDIT_ENABLED=false to disable audit logging entirely.
package audit
