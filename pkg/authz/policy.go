package authz

import (
	"errors"
	"fmt"

	"github.com/doodlesbykumbi/jobportal-in-go/pkg/identity"
)

// Deny reasons. Endpoints translate these into response codes at one
// boundary; nothing in between inspects them.
var (
	// ErrUnauthenticated means the action requires an identity and none
	// was established for the request.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrWrongRole means the identity's role does not match the action's
	// required role.
	ErrWrongRole = errors.New("role not permitted")
	// ErrNotOwner means the identity does not own the target resource.
	ErrNotOwner = errors.New("not resource owner")
)

// ResourceKind identifies what kind of entity a Resource describes.
type ResourceKind int

const (
	KindJob ResourceKind = iota
	KindApplication
	KindUserProfile
)

// Resource is the minimal ownership view of the entity an action targets.
// OwnerID always comes from a stored record, never from request payloads;
// a caller cannot spoof ownership by writing someone else's id into a
// request body.
type Resource struct {
	Kind    ResourceKind
	OwnerID string
}

// Action enumerates every operation the route table defines.
type Action int

const (
	// Public
	ActionAuthenticate Action = iota
	ActionJobViewPublic

	// Authenticated, any role
	ActionUserView
	ActionApplicationView

	// Authenticated + ownership
	ActionUserUpdate

	// Employer role
	ActionJobCreate
	ActionJobListOwn
	ActionJobViewStats
	ActionApplicationListForOwnJobs

	// Employer role + ownership
	ActionJobUpdate
	ActionJobDelete
	ActionJobChangeStatus
	ActionApplicationListForJob
	ActionApplicationUpdateStatus

	// Job seeker role
	ActionApplicationApply
	ActionApplicationListOwn
	ActionApplicationStats

	// Job seeker role + ownership
	ActionApplicationWithdraw
)

// requirement is what an action demands of the caller.
type requirement struct {
	public    bool
	role      *identity.Role
	ownership bool
}

func roleOf(r identity.Role) *identity.Role { return &r }

// requirements is the single route-authorization table. Every role check
// in the system pattern-matches here and nowhere else.
var requirements = map[Action]requirement{
	ActionAuthenticate:  {public: true},
	ActionJobViewPublic: {public: true},

	ActionUserView:        {},
	ActionApplicationView: {ownership: true},

	ActionUserUpdate: {ownership: true},

	ActionJobCreate:                 {role: roleOf(identity.RoleEmployer)},
	ActionJobListOwn:                {role: roleOf(identity.RoleEmployer)},
	ActionJobViewStats:              {role: roleOf(identity.RoleEmployer)},
	ActionApplicationListForOwnJobs: {role: roleOf(identity.RoleEmployer)},

	ActionJobUpdate:               {role: roleOf(identity.RoleEmployer), ownership: true},
	ActionJobDelete:               {role: roleOf(identity.RoleEmployer), ownership: true},
	ActionJobChangeStatus:         {role: roleOf(identity.RoleEmployer), ownership: true},
	ActionApplicationListForJob:   {role: roleOf(identity.RoleEmployer), ownership: true},
	ActionApplicationUpdateStatus: {role: roleOf(identity.RoleEmployer), ownership: true},

	ActionApplicationApply:   {role: roleOf(identity.RoleJobSeeker)},
	ActionApplicationListOwn: {role: roleOf(identity.RoleJobSeeker)},
	ActionApplicationStats:   {role: roleOf(identity.RoleJobSeeker)},

	ActionApplicationWithdraw: {role: roleOf(identity.RoleJobSeeker), ownership: true},
}

// Authorize decides whether an identity may perform an action on a
// resource. id may be nil (unauthenticated request) and resource may be
// nil (action not targeting a specific record). Rules are evaluated in
// precedence order; the first match wins:
//
//  1. public action             -> allow
//  2. no identity               -> ErrUnauthenticated
//  3. role mismatch             -> ErrWrongRole
//  4. ownership mismatch        -> ErrNotOwner
//  5. otherwise                 -> allow
func Authorize(id *identity.Identity, action Action, resource *Resource) error {
	req, ok := requirements[action]
	if !ok {
		return fmt.Errorf("unknown action %d: %w", action, ErrWrongRole)
	}

	if req.public {
		return nil
	}

	if id == nil {
		return ErrUnauthenticated
	}

	if req.role != nil && id.Role != *req.role {
		return ErrWrongRole
	}

	if req.ownership {
		if resource == nil || !id.Owns(resource.OwnerID) {
			return ErrNotOwner
		}
	}

	return nil
}
