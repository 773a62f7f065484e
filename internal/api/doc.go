// Package api implements the HTTP presentation boundary: handlers that
// expose the registration flow, session actions and directory operations
// as JSON endpoints, plus the error mapping from internal errors to
// status codes and field-scoped messages.
package api
