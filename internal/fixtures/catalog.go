// Package fixtures loads the mock directory catalog served by the admin
// console. The default catalog is embedded; FIXTURES_PATH may point at a YAML
// file with the same layout to replace it.
package fixtures

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"admin_console/internal/profile"

	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var defaultCatalog []byte

// EmailMapping is a canonical email to user mapping.
type EmailMapping struct {
	UserID     string `yaml:"userId"`
	IdentityID string `yaml:"identityId"`
}

// Templates hold the per-user payloads. String fields may contain the
// placeholders {userId}, {userIdLower} and {identityId}.
type Templates struct {
	Details    profile.UserDetails     `yaml:"details"`
	Identity   profile.UserIdentity    `yaml:"identity"`
	Properties []profile.UserProperty  `yaml:"properties"`
	Payment    profile.PaymentInfo     `yaml:"payment"`
	Newsletter profile.Newsletter      `yaml:"newsletter"`
	Addresses  []profile.Address       `yaml:"addresses"`
	Attributes []profile.UserAttribute `yaml:"attributes"`
}

// Catalog is the full mock data set.
type Catalog struct {
	Properties     []profile.Property       `yaml:"properties"`
	PropertyGroups []profile.PropertyGroup  `yaml:"propertyGroups"`
	PropertyUsers  map[string][]string      `yaml:"propertyUsers"`
	Identities     map[string]string        `yaml:"identities"`
	Emails         map[string]EmailMapping  `yaml:"emails"`
	Templates      Templates                `yaml:"templates"`
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads the catalog at path, or the embedded one when path is empty.
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes and validates a YAML catalog. Unknown keys are rejected so
// typos in an override file surface at startup.
func Parse(raw []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	var errs []error
	for i, p := range c.Properties {
		if p.Key == "" {
			errs = append(errs, fmt.Errorf("properties[%d]: key is required", i))
		}
	}
	seen := make(map[string]struct{}, len(c.PropertyGroups))
	for i, g := range c.PropertyGroups {
		if g.ID == "" {
			errs = append(errs, fmt.Errorf("propertyGroups[%d]: id is required", i))
			continue
		}
		if _, dup := seen[g.ID]; dup {
			errs = append(errs, fmt.Errorf("propertyGroups[%d]: duplicate id %q", i, g.ID))
		}
		seen[g.ID] = struct{}{}
	}
	for identityID, userID := range c.Identities {
		if userID == "" {
			errs = append(errs, fmt.Errorf("identities[%q]: user id is required", identityID))
		}
	}
	for email, m := range c.Emails {
		if m.UserID == "" {
			errs = append(errs, fmt.Errorf("emails[%q]: userId is required", email))
		}
	}
	return errors.Join(errs...)
}

// Expander substitutes the template placeholders for one lookup.
type Expander struct {
	r *strings.Replacer
}

// NewExpander builds an expander for the given user and identity.
func NewExpander(userID, identityID string) Expander {
	return Expander{r: strings.NewReplacer(
		"{userIdLower}", strings.ToLower(userID),
		"{userId}", userID,
		"{identityId}", identityID,
	)}
}

// String expands s.
func (e Expander) String(s string) string {
	return e.r.Replace(s)
}

// UserDetails renders the details template.
func (c *Catalog) UserDetails(userID string) profile.UserDetails {
	e := NewExpander(userID, "")
	t := c.Templates.Details
	return profile.UserDetails{
		UserID:      e.String(t.UserID),
		Name:        e.String(t.Name),
		Email:       e.String(t.Email),
		Status:      e.String(t.Status),
		CreatedAt:   t.CreatedAt,
		LastUpdated: t.LastUpdated,
	}
}

// UserIdentity renders the identity template.
func (c *Catalog) UserIdentity(identityID string) profile.UserIdentity {
	e := NewExpander("", identityID)
	out := c.Templates.Identity
	out.IdentityID = e.String(out.IdentityID)
	out.Provider = e.String(out.Provider)
	return out
}

// UserProperties renders the user property list.
func (c *Catalog) UserProperties(userID string) []profile.UserProperty {
	e := NewExpander(userID, "")
	out := make([]profile.UserProperty, 0, len(c.Templates.Properties))
	for _, p := range c.Templates.Properties {
		out = append(out, profile.UserProperty{Key: p.Key, Value: e.String(p.Value), UpdatedAt: p.UpdatedAt})
	}
	return out
}

// PaymentInfo renders the payment template.
func (c *Catalog) PaymentInfo(userID string) profile.PaymentInfo {
	e := NewExpander(userID, "")
	out := c.Templates.Payment
	out.CustomerID = e.String(out.CustomerID)
	return out
}

// Newsletter renders the newsletter template.
func (c *Catalog) Newsletter(string) profile.Newsletter {
	out := c.Templates.Newsletter
	out.Preferences = append([]string(nil), out.Preferences...)
	return out
}

// Addresses renders the address list.
func (c *Catalog) Addresses(userID string) []profile.Address {
	e := NewExpander(userID, "")
	out := make([]profile.Address, 0, len(c.Templates.Addresses))
	for _, a := range c.Templates.Addresses {
		a.ID = e.String(a.ID)
		out = append(out, a)
	}
	return out
}

// UserAttributes renders the attribute list.
func (c *Catalog) UserAttributes(userID string) []profile.UserAttribute {
	e := NewExpander(userID, "")
	out := make([]profile.UserAttribute, 0, len(c.Templates.Attributes))
	for _, a := range c.Templates.Attributes {
		a.Value = e.String(a.Value)
		out = append(out, a)
	}
	return out
}
