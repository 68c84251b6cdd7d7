package service

import (
	"context"

	"admin_console/internal/profile"
	"admin_console/platform/logger"
)

// Browsed is a property browser result. Fallback is set when the source
// failed and Data holds the placeholder payload instead.
type Browsed[T any] struct {
	Data     T      `json:"data"`
	Fallback bool   `json:"fallback"`
	Error    string `json:"error,omitempty"`
}

// PropertyBrowser reads the property catalog and degrades to placeholder
// data when the source is unavailable.
type PropertyBrowser struct {
	src PropertySource
	log *logger.Logger
}

// NewPropertyBrowser creates a property browser over src.
func NewPropertyBrowser(src PropertySource, log *logger.Logger) *PropertyBrowser {
	return &PropertyBrowser{src: src, log: log}
}

// Properties lists every property.
func (b *PropertyBrowser) Properties(ctx context.Context) Browsed[[]profile.Property] {
	data, err := b.src.ListProperties(ctx)
	return browse(ctx, b, "properties", data, err, fallbackProperties)
}

// Groups lists every property group.
func (b *PropertyBrowser) Groups(ctx context.Context) Browsed[[]profile.PropertyGroup] {
	data, err := b.src.ListPropertyGroups(ctx)
	return browse(ctx, b, "property_groups", data, err, fallbackPropertyGroups)
}

// Users lists the users carrying key. Unknown keys yield an empty list.
func (b *PropertyBrowser) Users(ctx context.Context, key string) Browsed[profile.PropertyUsers] {
	data, err := b.src.ListPropertyUsers(ctx, key)
	if err == nil && data.UserIDs == nil {
		data.UserIDs = []string{}
	}
	return browse(ctx, b, "property_users", data, err, func() profile.PropertyUsers {
		return fallbackPropertyUsers(key)
	})
}

func browse[T any](ctx context.Context, b *PropertyBrowser, what string, data T, err error, fallback func() T) Browsed[T] {
	if err == nil {
		return Browsed[T]{Data: data}
	}
	if b.log != nil {
		b.log.WithContext(ctx).Warn("property browser fell back", "view", what, "error", err)
	}
	return Browsed[T]{Data: fallback(), Fallback: true, Error: err.Error()}
}
