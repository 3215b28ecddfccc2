package models

// Session is the authenticated identity held by the client. Both fields
// must be present together or both absent — a half-populated session is a
// defect and is treated as no session at all.
type Session struct {
	// Token is the opaque bearer token returned by POST /login.
	Token string `json:"token"`

	// Username is the login name the token was issued for.
	Username string `json:"username"`
}

// Valid reports whether the session carries both a token and a username.
func (s Session) Valid() bool {
	return s.Token != "" && s.Username != ""
}
