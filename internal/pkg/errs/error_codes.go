/*
Package errs provides custom error types and application-level error code constants.

These error codes are used to clearly identify specific business or system errors
both internally within the server and in communication with clients.
*/
package errs

// 1xxx: Validation Errors (malformed or missing client input)
const (
	// ErrInvalidParams indicates that request parameter validation failed.
	ErrInvalidParams = 1001

	// ErrUnsupportedMediaType indicates that the request header Content-Type is not supported.
	ErrUnsupportedMediaType = 1002

	// ErrInvalidJSONFormat indicates that the request body JSON format is incorrect (e.g., syntax error).
	ErrInvalidJSONFormat = 1003

	// ErrMethodNotAllowed indicates that the endpoint does not support the request method.
	ErrMethodNotAllowed = 1004

	// ErrEmptyMessage indicates that a posted message was empty after trimming whitespace.
	ErrEmptyMessage = 1101

	// ErrMissingSessionToken indicates that the X-Session-Token header was absent on an
	// endpoint that requires one.
	ErrMissingSessionToken = 1102

	// ErrUnknownCatalogType indicates that the catalog "type" query parameter was neither
	// "servers" nor "channels".
	ErrUnknownCatalogType = 1103
)

// 2xxx: Not Found Errors
const (
	// ErrUserNotFound indicates that a session token did not resolve to any user.
	// Only the heartbeat path reports this; the message path creates an identity instead.
	ErrUserNotFound = 2001
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified, general server internal error.
	ErrUnknown = 5000

	// ErrStorage represents a database failure, including a rolled-back transaction.
	// The underlying detail is interpolated into the client message.
	ErrStorage = 5001
)
