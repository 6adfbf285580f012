package partner

import (
	"strings"

	"github.com/erp/docgen/internal/domain/shared"
	"github.com/google/uuid"
)

// Role distinguishes the two counter-party kinds
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleSupplier Role = "SUPPLIER"
)

// IsValid checks if the Role is a valid value
func (r Role) IsValid() bool {
	return r == RoleCustomer || r == RoleSupplier
}

// Counterparty is the customer or supplier a document is addressed to
type Counterparty struct {
	ID        uuid.UUID
	Role      Role
	Name      string
	Address   string
	Phone     string
	Email     string
	TaxNumber string
}

// NewCounterparty creates a validated counterparty
func NewCounterparty(role Role, name string) (*Counterparty, error) {
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Invalid counterparty role")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Counterparty name cannot be empty")
	}
	return &Counterparty{
		ID:   uuid.New(),
		Role: role,
		Name: strings.TrimSpace(name),
	}, nil
}

// Organization is the issuing business whose details appear on every
// generated document.
type Organization struct {
	ID        uuid.UUID
	Name      string
	Address   string
	Phone     string
	Email     string
	TaxNumber string
	Website   string
}

// NewOrganization creates a validated organization
func NewOrganization(name string) (*Organization, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Organization name cannot be empty")
	}
	return &Organization{
		ID:   uuid.New(),
		Name: strings.TrimSpace(name),
	}, nil
}
