// Package store defines the storage interfaces the server depends on.
//
// Implementations live in subpackages (the gorm package backs them with
// PostgreSQL). Endpoints and the lifecycle service only ever see these
// interfaces, which keeps them testable with mocks.
//
// Not-found and conflict conditions surface as the sentinel errors in
// this package; callers distinguish them with errors.Is. Anything else is
// a store-level failure and maps to a 500 at the boundary.
package store
