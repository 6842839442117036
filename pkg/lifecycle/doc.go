// Package lifecycle implements the application status state machine.
//
// States: PENDING (initial) -> REVIEWED | SHORTLISTED | REJECTED | HIRED.
// Status changes are gated on the employer owning the referenced job;
// withdrawal is gated on the job seeker owning the application and is
// only defined from PENDING, where it deletes the record.
//
// Entering a non-PENDING state for the first time stamps ReviewedAt,
// exactly once. Creating an application increments the parent job's
// application counter; withdrawing decrements it, floored at zero.
package lifecycle
