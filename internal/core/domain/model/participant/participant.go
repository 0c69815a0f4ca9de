package participant

import (
	"errors"
	"fmt"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/errs"
)

var (
	// ErrParticipantIsNotConstructed is returned when a Participant instance was
	// not created through NewParticipant or RestoreParticipant.
	ErrParticipantIsNotConstructed = errors.New("Participant must be created via NewParticipant constructor")
)

// Role identifies what a participant may do on the marketplace.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	RoleClient
	RoleTraveler
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "UNKNOWN",
		RoleClient:   "CLIENT",
		RoleTraveler: "TRAVELER",
		RoleAdmin:    "ADMIN",
	}
}

// RoleFromString parses the wire representation of a role.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if str == s && role != RoleUnknown {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role",
		fmt.Errorf("%q is not a valid role", s),
	)
}

// Validate checks that the value is one of the declared roles.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok || r == RoleUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the wire name of the role, or "UNKNOWN" for invalid values.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

// Participant is the aggregate root for a marketplace account.
type Participant struct {
	id   kernel.UUID
	name string
	role Role

	isConstructed bool
}

// NewParticipant creates a Participant with the given role.
func NewParticipant(id kernel.UUID, name string, role Role) (*Participant, error) {
	p := &Participant{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setRole(role),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParticipant rehydrates a Participant from persistence.
func RestoreParticipant(id kernel.UUID, name string, role Role) (*Participant, error) {
	return NewParticipant(id, name, role)
}

// Validate ensures the Participant instance was properly constructed.
func (p *Participant) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParticipantIsNotConstructed
	}
	return nil
}

// IsEqual compares two participants by their unique identifiers.
func (p *Participant) IsEqual(other *Participant) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the participant's unique identifier.
func (p *Participant) ID() kernel.UUID {
	return p.id
}

// Name returns the participant's display name.
func (p *Participant) Name() string {
	return p.name
}

// Role returns the participant's role.
func (p *Participant) Role() Role {
	return p.role
}

// CanAdministrate reports whether the participant may perform administrative
// overrides such as invoice corrections.
func (p *Participant) CanAdministrate() bool {
	return p.role == RoleAdmin
}

func (p *Participant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Participant) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Participant) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	p.role = role
	return nil
}
