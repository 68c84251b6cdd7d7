// Package transport holds the request shapes of the user directory endpoints.
package transport

// UserPath binds the :userId path segment.
type UserPath struct {
	UserID string `uri:"userId" binding:"required"`
}

// IdentityPath binds the :identityId path segment.
type IdentityPath struct {
	IdentityID string `uri:"identityId" binding:"required"`
}

// EmailPath binds the :email path segment. Gin has already percent-decoded it.
type EmailPath struct {
	Email string `uri:"email" binding:"required"`
}
