package service

import (
	"fmt"

	"admin_console/internal/profile"
)

// Placeholder payloads shown when a source cannot be reached. They keep the
// view populated and are never mixed with real data of another section.

func fallbackUserDetails(userID string) profile.UserDetails {
	return profile.UserDetails{
		UserID:    userID,
		Name:      "John Doe",
		Email:     "john.doe@example.com",
		Status:    "active",
		CreatedAt: "2024-01-15T10:30:00Z",
	}
}

func fallbackUserIdentity(identityID string) profile.UserIdentity {
	return profile.UserIdentity{
		IdentityID: identityID,
		Provider:   "auth0",
		Verified:   true,
		LastLogin:  "2024-01-20T14:22:00Z",
	}
}

func fallbackUserProperties() []profile.UserProperty {
	return []profile.UserProperty{
		{Key: "theme", Value: "dark", UpdatedAt: "2024-01-18T09:15:00Z"},
		{Key: "language", Value: "en-US", UpdatedAt: "2024-01-15T10:30:00Z"},
		{Key: "notifications", Value: "enabled", UpdatedAt: "2024-01-19T16:45:00Z"},
	}
}

func fallbackPaymentInfo() profile.PaymentInfo {
	return profile.PaymentInfo{
		CustomerID:  "cus_1234567890",
		Plan:        "Pro",
		Status:      "active",
		NextBilling: "2024-02-15T00:00:00Z",
		Amount:      29.99,
	}
}

func fallbackNewsletter() profile.Newsletter {
	return profile.Newsletter{
		Subscribed:  true,
		Preferences: []string{"product_updates", "weekly_digest"},
		LastSent:    "2024-01-19T08:00:00Z",
	}
}

func fallbackAddresses() []profile.Address {
	return []profile.Address{
		{ID: "addr_1", Type: "billing", Street: "123 Main St", City: "New York", Country: "USA", IsDefault: true},
		{ID: "addr_2", Type: "shipping", Street: "456 Oak Ave", City: "Los Angeles", Country: "USA", IsDefault: false},
	}
}

func fallbackUserAttributes() []profile.UserAttribute {
	return []profile.UserAttribute{
		{Key: "department", Value: "Engineering", Type: "string"},
		{Key: "employee_id", Value: "EMP001", Type: "string"},
		{Key: "start_date", Value: "2023-06-01", Type: "date"},
		{Key: "salary_band", Value: "L4", Type: "string"},
	}
}

func fallbackProperties() []profile.Property {
	return []profile.Property{
		{Key: "office_1", Value: "Downtown Office"},
		{Key: "home_1", Value: "Suburban Home"},
		{Key: "warehouse_1", Value: "Warehouse District"},
	}
}

func fallbackPropertyGroups() []profile.PropertyGroup {
	return []profile.PropertyGroup{
		{
			ID:   "user-preferences",
			Name: "User Preferences",
			Properties: []profile.Property{
				{Key: "theme", Value: "dark"},
				{Key: "language", Value: "en-US"},
				{Key: "timezone", Value: "UTC"},
			},
		},
		{
			ID:   "system-config",
			Name: "System Configuration",
			Properties: []profile.Property{
				{Key: "max_connections", Value: "100"},
				{Key: "timeout", Value: "30s"},
				{Key: "debug_mode", Value: "false"},
			},
		},
		{
			ID:   "notifications",
			Name: "Notification Settings",
			Properties: []profile.Property{
				{Key: "email", Value: "enabled"},
				{Key: "push", Value: "disabled"},
				{Key: "sms", Value: "enabled"},
			},
		},
	}
}

func fallbackPropertyUsers(key string) profile.PropertyUsers {
	users := make([]string, 0, 3)
	for i := 1; i <= 3; i++ {
		users = append(users, fmt.Sprintf("user_%s_%d", key, i))
	}
	return profile.PropertyUsers{PropertyKey: key, UserIDs: users}
}
