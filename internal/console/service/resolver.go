package service

import (
	"context"
	"errors"
	"slices"
	"time"

	"admin_console/platform/apperr"
	"admin_console/platform/sanitize"
	"admin_console/platform/validator"
)

const (
	MsgNoInput        = "enter either a user ID, identity ID, or email"
	MsgAmbiguousInput = "enter only one of user ID, identity ID, or email"

	msgIdentityUnresolved = "could not resolve identity ID"
	msgEmailUnresolved    = "could not resolve email"
)

// InputKind names the field an Input was identified by.
type InputKind string

const (
	InputUserID     InputKind = "userId"
	InputIdentityID InputKind = "identityId"
	InputEmail      InputKind = "email"
)

var errEmptyUserID = errors.New("lookup returned no user ID")

// Input is the operator's identifying input. Exactly one field may be set.
type Input struct {
	UserID     string `json:"userId" form:"userId" validate:"required_without_all=IdentityID Email,excluded_with=IdentityID Email"`
	IdentityID string `json:"identityId" form:"identityId" validate:"excluded_with=UserID Email"`
	Email      string `json:"email" form:"email" validate:"excluded_with=UserID IdentityID"`
}

// Normalize returns the input with every field sanitized and trimmed.
func (in Input) Normalize() Input {
	return Input{
		UserID:     sanitize.Identifier(in.UserID),
		IdentityID: sanitize.Identifier(in.IdentityID),
		Email:      sanitize.Identifier(in.Email),
	}
}

// Kind reports which field is set and its value. Call on a validated input.
func (in Input) Kind() (InputKind, string) {
	switch {
	case in.IdentityID != "":
		return InputIdentityID, in.IdentityID
	case in.Email != "":
		return InputEmail, in.Email
	default:
		return InputUserID, in.UserID
	}
}

// Resolver turns an identifying input into a canonical user reference.
type Resolver struct {
	identities IdentityLookup
	emails     EmailLookup
	val        *validator.Validator
	timeout    time.Duration
}

// NewResolver creates a resolver. A non-positive timeout leaves lookups unbounded.
func NewResolver(identities IdentityLookup, emails EmailLookup, val *validator.Validator, timeout time.Duration) *Resolver {
	return &Resolver{identities: identities, emails: emails, val: val, timeout: timeout}
}

// Resolve validates in and resolves it, calling at most one lookup.
// Invalid input yields a KindValidation error without any lookup; a failed
// lookup yields a KindUnavailable error.
func (r *Resolver) Resolve(ctx context.Context, in Input) (ResolvedIdentity, error) {
	in = in.Normalize()
	if err := r.validate(in); err != nil {
		return ResolvedIdentity{}, err
	}

	kind, value := in.Kind()
	switch kind {
	case InputIdentityID:
		lctx, cancel := r.lookupContext(ctx)
		defer cancel()
		link, err := r.identities.LookupIdentity(lctx, value)
		if err != nil {
			return ResolvedIdentity{}, unresolved(msgIdentityUnresolved, kind, value, err)
		}
		if link.UserID == "" {
			return ResolvedIdentity{}, unresolved(msgIdentityUnresolved, kind, value, errEmptyUserID)
		}
		return ResolvedIdentity{UserID: link.UserID, IdentityID: value}, nil

	case InputEmail:
		lctx, cancel := r.lookupContext(ctx)
		defer cancel()
		link, err := r.emails.LookupEmail(lctx, value)
		if err != nil {
			return ResolvedIdentity{}, unresolved(msgEmailUnresolved, kind, value, err)
		}
		if link.UserID == "" {
			return ResolvedIdentity{}, unresolved(msgEmailUnresolved, kind, value, errEmptyUserID)
		}
		return ResolvedIdentity{UserID: link.UserID, IdentityID: link.IdentityID}, nil

	default:
		return ResolvedIdentity{UserID: value}, nil
	}
}

func unresolved(message string, kind InputKind, value string, err error) error {
	return apperr.Unavailable(message, err).
		WithOp("resolver.Resolve").
		WithDetails(map[string]string{"inputKind": string(kind), "input": value})
}

func (r *Resolver) validate(in Input) error {
	err := r.val.Struct(in)
	if err == nil {
		return nil
	}
	if slices.Contains(validator.FailedTags(err), "required_without_all") {
		return apperr.Validation(MsgNoInput)
	}
	return apperr.Validation(MsgAmbiguousInput)
}

// lookupContext detaches the lookup from caller cancellation so an issued
// lookup always runs to completion, bounded by the configured timeout.
func (r *Resolver) lookupContext(ctx context.Context) (context.Context, context.CancelFunc) {
	detached := context.WithoutCancel(ctx)
	if r.timeout <= 0 {
		return detached, func() {}
	}
	return context.WithTimeout(detached, r.timeout)
}
