// Package authz is the job portal's authorization policy.
//
// It combines role checks with resource-ownership checks in one decision
// function, Authorize. Handlers build a Resource from stored records (the
// owner id is always read back from the database) and name the Action they
// are about to perform; the policy allows or denies with a typed reason.
//
// The requirements table in this package is the only place the codebase
// pattern-matches on identity.Role. Adding an operation means adding an
// Action and one table row, not another scattered role comparison.
package authz
