// Package app contains shared application-layer constants used across the
// task sync server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body is not valid JSON.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidDataProvided is returned when the request body decodes but
	// fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied login/password
	// combination does not match any existing user record.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgLoginAlreadyExists is returned when registration collides with an
	// existing login.
	MsgLoginAlreadyExists = "login already exists"

	// MsgNoUserID is returned when an authenticated route is reached
	// without a user id in the request context.
	MsgNoUserID = "no user ID was given"

	// MsgPushFailed is returned when applying a pushed change batch fails.
	MsgPushFailed = "error applying pushed changes"

	// MsgPullFailed is returned when assembling a pull response fails.
	MsgPullFailed = "error assembling pull response"

	// MsgInternalServerError is the generic 500 response body.
	MsgInternalServerError = "Internal Server Error"
)
