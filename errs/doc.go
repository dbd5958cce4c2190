// Package errs defines the module's expected-failure taxonomy: stable error
// kinds raised by the repository and connection manager, with a conventional
// HTTP-like status mapping for callers that expose them over an API.
package errs
