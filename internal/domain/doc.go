// Package domain defines the core business entities of the artist
// directory: artist records, the authenticated session, and the closed
// enumerations (category, location, user type, rating) they are built from.
package domain
