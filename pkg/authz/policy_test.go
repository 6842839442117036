package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/doodlesbykumbi/jobportal-in-go/pkg/identity"
)

func seeker() *identity.Identity {
	return &identity.Identity{UserID: "seeker-1", Email: "seeker@example.com", Role: identity.RoleJobSeeker}
}

func employer() *identity.Identity {
	return &identity.Identity{UserID: "employer-1", Email: "boss@example.com", Role: identity.RoleEmployer}
}

func TestAuthorize_PublicActions(t *testing.T) {
	// Public actions allow anonymous callers, rule 1 wins before any
	// identity check.
	for _, action := range []Action{ActionAuthenticate, ActionJobViewPublic} {
		assert.NoError(t, Authorize(nil, action, nil))
	}

	// Identities are also fine on public routes.
	assert.NoError(t, Authorize(seeker(), ActionJobViewPublic, nil))
}

func TestAuthorize_Unauthenticated(t *testing.T) {
	actions := []Action{
		ActionUserView,
		ActionJobCreate,
		ActionJobListOwn,
		ActionApplicationApply,
		ActionApplicationUpdateStatus,
		ActionApplicationWithdraw,
	}

	for _, action := range actions {
		err := Authorize(nil, action, nil)
		assert.ErrorIs(t, err, ErrUnauthenticated, "action %d", action)
	}
}

func TestAuthorize_EmployerOnlyActionsDenySeeker(t *testing.T) {
	// Every employer-gated action in the route table denies a job seeker.
	actions := []Action{
		ActionJobCreate,
		ActionJobListOwn,
		ActionJobViewStats,
		ActionJobUpdate,
		ActionJobDelete,
		ActionJobChangeStatus,
		ActionApplicationListForJob,
		ActionApplicationUpdateStatus,
	}

	res := &Resource{Kind: KindJob, OwnerID: "seeker-1"}
	for _, action := range actions {
		err := Authorize(seeker(), action, res)
		assert.ErrorIs(t, err, ErrWrongRole, "action %d", action)
	}
}

func TestAuthorize_SeekerOnlyActionsDenyEmployer(t *testing.T) {
	actions := []Action{
		ActionApplicationApply,
		ActionApplicationListOwn,
		ActionApplicationStats,
		ActionApplicationWithdraw,
	}

	res := &Resource{Kind: KindApplication, OwnerID: "employer-1"}
	for _, action := range actions {
		err := Authorize(employer(), action, res)
		assert.ErrorIs(t, err, ErrWrongRole, "action %d", action)
	}
}

func TestAuthorize_Ownership(t *testing.T) {
	owner := employer()

	tests := []struct {
		name     string
		id       *identity.Identity
		action   Action
		resource *Resource
		wantErr  error
	}{
		{
			name:     "owner may update own job",
			id:       owner,
			action:   ActionJobUpdate,
			resource: &Resource{Kind: KindJob, OwnerID: owner.UserID},
		},
		{
			name:     "other employer may not update job",
			id:       &identity.Identity{UserID: "employer-2", Role: identity.RoleEmployer},
			action:   ActionJobUpdate,
			resource: &Resource{Kind: KindJob, OwnerID: owner.UserID},
			wantErr:  ErrNotOwner,
		},
		{
			name:     "other employer may not delete job",
			id:       &identity.Identity{UserID: "employer-2", Role: identity.RoleEmployer},
			action:   ActionJobDelete,
			resource: &Resource{Kind: KindJob, OwnerID: owner.UserID},
			wantErr:  ErrNotOwner,
		},
		{
			name:     "owner may delete own job",
			id:       owner,
			action:   ActionJobDelete,
			resource: &Resource{Kind: KindJob, OwnerID: owner.UserID},
		},
		{
			name:     "missing resource denies ownership action",
			id:       owner,
			action:   ActionJobUpdate,
			resource: nil,
			wantErr:  ErrNotOwner,
		},
		{
			name:     "empty owner id never matches",
			id:       owner,
			action:   ActionJobUpdate,
			resource: &Resource{Kind: KindJob},
			wantErr:  ErrNotOwner,
		},
		{
			name:     "seeker owns own application for withdraw",
			id:       seeker(),
			action:   ActionApplicationWithdraw,
			resource: &Resource{Kind: KindApplication, OwnerID: "seeker-1"},
		},
		{
			name:     "other seeker may not withdraw",
			id:       &identity.Identity{UserID: "seeker-2", Role: identity.RoleJobSeeker},
			action:   ActionApplicationWithdraw,
			resource: &Resource{Kind: KindApplication, OwnerID: "seeker-1"},
			wantErr:  ErrNotOwner,
		},
		{
			name:     "self profile update",
			id:       seeker(),
			action:   ActionUserUpdate,
			resource: &Resource{Kind: KindUserProfile, OwnerID: "seeker-1"},
		},
		{
			name:     "foreign profile update denied",
			id:       seeker(),
			action:   ActionUserUpdate,
			resource: &Resource{Kind: KindUserProfile, OwnerID: "someone-else"},
			wantErr:  ErrNotOwner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.id, tt.action, tt.resource)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthorize_RoleCheckedBeforeOwnership(t *testing.T) {
	// A seeker targeting a job they "own" still fails on role first.
	res := &Resource{Kind: KindJob, OwnerID: "seeker-1"}
	err := Authorize(seeker(), ActionJobUpdate, res)
	assert.ErrorIs(t, err, ErrWrongRole)
}

func TestAuthorize_ApplicationViewRequiresParticipant(t *testing.T) {
	// The view action carries ownership; the handler supplies the
	// participant's recorded id as owner.
	app := &Resource{Kind: KindApplication, OwnerID: "seeker-1"}

	assert.NoError(t, Authorize(seeker(), ActionApplicationView, app))

	stranger := &identity.Identity{UserID: "seeker-2", Role: identity.RoleJobSeeker}
	assert.ErrorIs(t, Authorize(stranger, ActionApplicationView, app), ErrNotOwner)
}
