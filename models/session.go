package models

// Credentials is the email/password pair submitted once per login call.
// It is never persisted.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is the set of tokens and client credentials returned by the
// authentication endpoint and required by every authenticated backend call.
//
// Only AccessToken, RefreshToken, ClientID and ClientSecret are persisted
// locally; TokenType, ExpiresIn and Scope are informational and live only in
// the value returned from a login.
type Session struct {
	// AccessToken is the bearer token sent in the Authorization header.
	AccessToken string `json:"access_token"`

	// RefreshToken is exchanged for a new AccessToken when the backend
	// answers 401.
	RefreshToken string `json:"refresh_token"`

	// TokenType is the token scheme reported by the server (usually "Bearer").
	TokenType string `json:"token_type"`

	// ExpiresIn is the access token lifetime in seconds as reported at login.
	ExpiresIn int64 `json:"expires_in"`

	// Scope is the space separated scope list granted to the session.
	Scope string `json:"scope"`

	// ClientID is sent as X-Client-ID on authenticated calls.
	ClientID string `json:"client_id"`

	// ClientSecret is sent as X-Client-Secret on authenticated calls.
	ClientSecret string `json:"client_secret"`
}

// HasAccessToken reports whether an access token is present.
func (s Session) HasAccessToken() bool {
	return s.AccessToken != ""
}

// IsAuthenticated reports whether the session carries everything an
// authenticated call needs: the access token plus the client id and secret.
func (s Session) IsAuthenticated() bool {
	return s.AccessToken != "" && s.ClientID != "" && s.ClientSecret != ""
}

// RefreshRequest is the body of the token refresh call.
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// RefreshResponse carries the access token issued by the refresh endpoint.
type RefreshResponse struct {
	Access string `json:"access"`
}
