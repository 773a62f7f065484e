// Package memory provides in-memory implementations of the store
// interfaces. State lives for the process lifetime only; nothing is
// persisted across restarts.
package memory
