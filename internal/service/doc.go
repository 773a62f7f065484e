// Package service provides the application-level operations over the
// directory and session stores: the registration flow and the discovery
// query.
package service
