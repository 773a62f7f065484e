package domain

// UserInfo is the payload stored in the session when an account signs in.
// It is kept verbatim as collected by the registration flow; the plaintext
// password is never serialized.
type UserInfo struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	CurrentLocation Location `json:"current_location,omitempty"`
	Password        string   `json:"-"`
	UserType        UserType `json:"user_type"`
}

// Session is the process's single authenticated-identity slot. At most one
// identity is signed in at a time.
//
// Invariant: UserInfo is non-nil if and only if Authenticated is true.
// Logging out clears Authenticated, UserInfo and UserType together.
type Session struct {
	Authenticated bool      `json:"authenticated"`
	UserInfo      *UserInfo `json:"user_info,omitempty"`
	UserType      UserType  `json:"user_type,omitempty"`
}
