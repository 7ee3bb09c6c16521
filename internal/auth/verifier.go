package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/distribution-api/internal/domain"
)

// CredentialStore looks up the stored credential record for an identifier.
// An absent record is reported as pgx.ErrNoRows, not a failure.
type CredentialStore interface {
	FindByDNI(ctx context.Context, dni string) (*domain.Employee, error)
}

// Identity is the verified claim set handed to the token issuer.
type Identity struct {
	DNI          string
	EmployeeCode int
	IsAdmin      bool
}

// Verifier checks submitted credentials against the store. Check order is
// fixed: missing input, then secret match, then account status. A wrong
// secret always fails before inactivity is revealed.
type Verifier struct {
	store CredentialStore
}

// NewVerifier builds a verifier over the given store.
func NewVerifier(store CredentialStore) *Verifier {
	return &Verifier{store: store}
}

// Verify authenticates one dni/secret pair. It performs a single read against
// the store and no writes.
func (v *Verifier) Verify(ctx context.Context, dni, secret string) (*Identity, error) {
	if dni == "" || secret == "" {
		return nil, ErrMissingCredentials
	}

	emp, err := v.store.FindByDNI(ctx, dni)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUnknownIdentity
		}
		return nil, fmt.Errorf("%w: %s", ErrStoreUnavailable, err)
	}

	if !CompareSecret(emp.Secret, secret) {
		return nil, ErrInvalidSecret
	}
	if !emp.Active() {
		return nil, ErrInactiveAccount
	}

	return &Identity{
		DNI:          emp.DNI,
		EmployeeCode: emp.EmployeeCode,
		IsAdmin:      emp.IsAdmin,
	}, nil
}
