// Package transport holds the request shapes of the property endpoints.
package transport

// PropertyKeyPath binds the :key path segment.
type PropertyKeyPath struct {
	Key string `uri:"key" binding:"required"`
}
