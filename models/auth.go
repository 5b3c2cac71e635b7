package models

// UserAuthenticationRequest carries the credential pair sent to the
// authentication endpoint.
type UserAuthenticationRequest struct {
	// Username is the PatientVault account login.
	Username string `json:"username"`

	// Password is sent as entered; no local hashing is performed.
	Password string `json:"password"`
}

// UserAuthenticationResponse is returned by a successful authentication.
type UserAuthenticationResponse struct {
	// SessionID is the session token every subsequent call must present.
	SessionID string `json:"session_id"`

	// UserID is the server-side identifier of the authenticated account.
	UserID int64 `json:"user_id"`

	// Username echoes the authenticated login.
	Username string `json:"username"`

	// FullName is the display name of the account owner.
	FullName string `json:"full_name"`
}
