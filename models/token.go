package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the explicit JWT claim set issued by the auth service.
//
// It embeds [jwt.RegisteredClaims] for the standard fields (sub, exp, iat,
// iss) and adds the application claims that identify the caller on every
// protected request. The subject claim carries the username; UserID and
// Role are dedicated claims so that handlers never need to re-query the
// user table to authorize a request.
type Claims struct {
	jwt.RegisteredClaims

	// UserID is the owner identifier used for all owner-scoped queries.
	UserID int64 `json:"user_id"`

	// Role is the free-text role label copied from the user record at
	// token issue time.
	Role string `json:"role,omitempty"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers,
// an HTTP-only cookie, or stored on the client side.
type Token struct {
	// Token is the underlying JWT token used for signing and claim
	// inspection. Excluded from JSON serialization because only the
	// compact string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// Claims is the decoded application claim set.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	// Excluded from JSON serialization; use [Token.String] to retrieve it.
	SignedString string `json:"-"`
}

// Username returns the subject claim, i.e. the authenticated username.
func (t *Token) Username() string {
	return t.Claims.Subject
}

// UserID returns the owner identifier claim.
func (t *Token) UserID() int64 {
	return t.Claims.UserID
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// TokenResponse is the JSON body returned by the token endpoint.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
