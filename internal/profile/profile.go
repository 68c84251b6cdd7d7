// Package profile defines the payload shapes shared between the directory API
// and the console lookup workflow. These are the JSON contracts of the
// /users and /properties endpoints.
package profile

// Property is a configuration key/value pair.
type Property struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// PropertyGroup is a named set of properties.
type PropertyGroup struct {
	ID         string     `json:"id" yaml:"id"`
	Name       string     `json:"name" yaml:"name"`
	Properties []Property `json:"properties" yaml:"properties"`
}

// PropertyUsers lists the users that carry a property key.
type PropertyUsers struct {
	PropertyKey string   `json:"propertyKey" yaml:"propertyKey"`
	UserIDs     []string `json:"userIds" yaml:"userIds"`
}

// UserDetails is the core user record.
type UserDetails struct {
	UserID      string `json:"userId" yaml:"userId"`
	Name        string `json:"name" yaml:"name"`
	Email       string `json:"email" yaml:"email"`
	Status      string `json:"status" yaml:"status"`
	CreatedAt   string `json:"createdAt" yaml:"createdAt"`
	LastUpdated string `json:"lastUpdated,omitempty" yaml:"lastUpdated,omitempty"`
}

// UserIdentity describes one login identity of a user.
type UserIdentity struct {
	IdentityID string `json:"identityId" yaml:"identityId"`
	Provider   string `json:"provider" yaml:"provider"`
	Verified   bool   `json:"verified" yaml:"verified"`
	LastLogin  string `json:"lastLogin" yaml:"lastLogin"`
	LoginCount int    `json:"loginCount,omitempty" yaml:"loginCount,omitempty"`
	CreatedAt  string `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
}

// UserProperty is a property value set on a user.
type UserProperty struct {
	Key       string `json:"key" yaml:"key"`
	Value     string `json:"value" yaml:"value"`
	UpdatedAt string `json:"updatedAt" yaml:"updatedAt"`
}

// PaymentInfo is the billing summary of a user.
type PaymentInfo struct {
	CustomerID    string  `json:"customerId" yaml:"customerId"`
	Plan          string  `json:"plan" yaml:"plan"`
	Status        string  `json:"status" yaml:"status"`
	NextBilling   string  `json:"nextBilling" yaml:"nextBilling"`
	Amount        float64 `json:"amount" yaml:"amount"`
	Currency      string  `json:"currency,omitempty" yaml:"currency,omitempty"`
	PaymentMethod string  `json:"paymentMethod,omitempty" yaml:"paymentMethod,omitempty"`
	LastPayment   string  `json:"lastPayment,omitempty" yaml:"lastPayment,omitempty"`
}

// Newsletter is the newsletter subscription state of a user.
type Newsletter struct {
	Subscribed   bool     `json:"subscribed" yaml:"subscribed"`
	Preferences  []string `json:"preferences" yaml:"preferences"`
	LastSent     string   `json:"lastSent" yaml:"lastSent"`
	SubscribedAt string   `json:"subscribedAt,omitempty" yaml:"subscribedAt,omitempty"`
	Frequency    string   `json:"frequency,omitempty" yaml:"frequency,omitempty"`
}

// Address is a postal address of a user.
type Address struct {
	ID        string `json:"id" yaml:"id"`
	Type      string `json:"type" yaml:"type"`
	Street    string `json:"street" yaml:"street"`
	City      string `json:"city" yaml:"city"`
	State     string `json:"state,omitempty" yaml:"state,omitempty"`
	ZipCode   string `json:"zipCode,omitempty" yaml:"zipCode,omitempty"`
	Country   string `json:"country" yaml:"country"`
	IsDefault bool   `json:"isDefault" yaml:"isDefault"`
	CreatedAt string `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
}

// UserAttribute is a typed HR-style attribute of a user.
type UserAttribute struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
	Type  string `json:"type" yaml:"type"`
}

// IdentityLink is the reply of the identity to user lookup.
type IdentityLink struct {
	IdentityID string `json:"identityId" yaml:"identityId"`
	UserID     string `json:"userId" yaml:"userId"`
	Provider   string `json:"provider" yaml:"provider"`
	Found      bool   `json:"found" yaml:"found"`
}

// EmailLink is the reply of the email to user lookup.
type EmailLink struct {
	Email      string `json:"email" yaml:"email"`
	UserID     string `json:"userId" yaml:"userId"`
	IdentityID string `json:"identityId,omitempty" yaml:"identityId,omitempty"`
	Found      bool   `json:"found" yaml:"found"`
}
