// Package transport holds the request shapes of the console endpoints.
package transport

// HeaderSession carries the console session ID in both directions.
const HeaderSession = "X-Console-Session"

// LookupQuery is the identifying input of a lookup. Exactly one field must
// be set; the console service validates that.
type LookupQuery struct {
	UserID     string `form:"userId"`
	IdentityID string `form:"identityId"`
	Email      string `form:"email"`
}

// SessionPath binds the :sessionId path segment.
type SessionPath struct {
	SessionID string `uri:"sessionId" binding:"required"`
}

// PropertyKeyPath binds the :key path segment.
type PropertyKeyPath struct {
	Key string `uri:"key" binding:"required"`
}
