package service

import "errors"

// Failure taxonomy surfaced by every operation. Handlers map these onto
// HTTP statuses; nothing below the handler layer knows about transport.
var (
	// ErrUnauthenticated covers a missing, invalid or expired token, and a
	// token whose subject no longer exists.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden means a valid identity with an insufficient role.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound means a referenced entity is absent.
	ErrNotFound = errors.New("not found")
	// ErrConflict means a duplicate entity or duplicate relationship.
	ErrConflict = errors.New("already exists")
	// ErrInvalidCredentials is returned by login for an unknown email or a
	// wrong password, without distinguishing the two.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken is the uniform verification failure of the token
	// service; it never reveals whether the signature, shape or expiry
	// was at fault.
	ErrInvalidToken = errors.New("invalid token")
	// ErrInvalidNoticeScope means a notice set both or neither of its
	// class and standard scopes.
	ErrInvalidNoticeScope = errors.New("notice must target exactly one of class or standard")
	// ErrDependencyExists means a delete was rejected because dependent
	// records still reference the entity.
	ErrDependencyExists = errors.New("dependent records exist")
)
