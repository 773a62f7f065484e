// Package store defines the capability interfaces for directory and
// session state, together with the sentinel errors their implementations
// return. The interfaces keep the discovery query and registration flow
// independent of how the state is held; the only implementation in this
// repository is the in-memory one under store/memory, but a durable
// backing store can be substituted without changing either contract.
package store
