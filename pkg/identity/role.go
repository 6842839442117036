package identity

//go:generate go run github.com/dmarkham/enumer -type Role -trimprefix Role -transform snake_upper -json -sql -output role.gen.go

// Role is the closed set of account kinds a user can hold. Every
// authorization decision pattern-matches on it in exactly one place
// (pkg/authz); the rest of the code treats it as opaque.
type Role int

const (
	RoleJobSeeker Role = iota
	RoleEmployer
)
