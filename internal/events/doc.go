// Package events carries abstract navigation transition requests from the
// core services to whatever owns screen flow. Services emit "go to screen
// X" events without knowing who listens; the presentation boundary
// registers handlers to realize them.
package events
