package auth

import "fmt"

// Permission names one allowed action on one resource type. The set is
// closed: routes are registered with these constants, and ParsePermission
// rejects anything outside the set so a bad deployment value fails at
// startup instead of silently denying every request.
//
// Matching against token claims is byte-exact. A granted value like
// "patch:actors " (trailing space) does not satisfy PermPatchActors;
// trimming here would hide issuance bugs upstream.
type Permission string

const (
	PermGetMovies    Permission = "get:movies"
	PermGetActors    Permission = "get:actors"
	PermPostMovies   Permission = "post:movies"
	PermPostActors   Permission = "post:actors"
	PermPatchMovies  Permission = "patch:movies"
	PermPatchActors  Permission = "patch:actors"
	PermDeleteMovies Permission = "delete:movies"
	PermDeleteActors Permission = "delete:actors"
)

var allPermissions = map[Permission]struct{}{
	PermGetMovies:    {},
	PermGetActors:    {},
	PermPostMovies:   {},
	PermPostActors:   {},
	PermPatchMovies:  {},
	PermPatchActors:  {},
	PermDeleteMovies: {},
	PermDeleteActors: {},
}

func (p Permission) Valid() bool {
	_, ok := allPermissions[p]
	return ok
}

func ParsePermission(s string) (Permission, error) {
	p := Permission(s)
	if !p.Valid() {
		return "", fmt.Errorf("unknown permission %q", s)
	}
	return p, nil
}
