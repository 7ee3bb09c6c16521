package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/distribution-api/internal/domain"
)

type fakeStore struct {
	records map[string]*domain.Employee
	err     error
}

func (s *fakeStore) FindByDNI(_ context.Context, dni string) (*domain.Employee, error) {
	if s.err != nil {
		return nil, s.err
	}
	emp, ok := s.records[dni]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return emp, nil
}

func activeEmployee() *domain.Employee {
	return &domain.Employee{
		EmployeeCode: 42,
		DNI:          "12345678",
		Name:         "Maria",
		Secret:       "password123",
		Status:       domain.EmployeeStatusActive,
		IsAdmin:      true,
	}
}

func TestVerifySuccess(t *testing.T) {
	store := &fakeStore{records: map[string]*domain.Employee{"12345678": activeEmployee()}}
	v := NewVerifier(store)

	identity, err := v.Verify(context.Background(), "12345678", "password123")
	require.NoError(t, err)
	assert.Equal(t, "12345678", identity.DNI)
	assert.Equal(t, 42, identity.EmployeeCode)
	assert.True(t, identity.IsAdmin)
}

func TestVerifyMissingCredentials(t *testing.T) {
	// An empty field must fail before the store is consulted.
	store := &fakeStore{err: errors.New("store must not be touched")}
	v := NewVerifier(store)

	_, err := v.Verify(context.Background(), "", "password123")
	require.ErrorIs(t, err, ErrMissingCredentials)

	_, err = v.Verify(context.Background(), "12345678", "")
	require.ErrorIs(t, err, ErrMissingCredentials)
}

func TestVerifyUnknownIdentity(t *testing.T) {
	store := &fakeStore{records: map[string]*domain.Employee{}}
	v := NewVerifier(store)

	_, err := v.Verify(context.Background(), "99999999", "whatever")
	require.ErrorIs(t, err, ErrUnknownIdentity)
}

func TestVerifyWrongSecret(t *testing.T) {
	store := &fakeStore{records: map[string]*domain.Employee{"12345678": activeEmployee()}}
	v := NewVerifier(store)

	_, err := v.Verify(context.Background(), "12345678", "nope")
	require.ErrorIs(t, err, ErrInvalidSecret)
}

func TestVerifySecretCheckPrecedesStatusCheck(t *testing.T) {
	// A wrong secret on an inactive account must not reveal the inactivity.
	emp := activeEmployee()
	emp.Status = domain.EmployeeStatusInactive
	store := &fakeStore{records: map[string]*domain.Employee{"12345678": emp}}
	v := NewVerifier(store)

	_, err := v.Verify(context.Background(), "12345678", "nope")
	require.ErrorIs(t, err, ErrInvalidSecret)
}

func TestVerifyInactiveAccount(t *testing.T) {
	emp := activeEmployee()
	emp.Status = domain.EmployeeStatusInactive
	store := &fakeStore{records: map[string]*domain.Employee{"12345678": emp}}
	v := NewVerifier(store)

	_, err := v.Verify(context.Background(), "12345678", "password123")
	require.ErrorIs(t, err, ErrInactiveAccount)
}

func TestVerifyStoreUnavailable(t *testing.T) {
	store := &fakeStore{err: errors.New("connection refused")}
	v := NewVerifier(store)

	_, err := v.Verify(context.Background(), "12345678", "password123")
	require.ErrorIs(t, err, ErrStoreUnavailable)
	assert.NotErrorIs(t, err, ErrInvalidSecret)
}

func TestVerifyAcceptsBcryptStoredSecret(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	emp := activeEmployee()
	emp.Secret = string(hashed)
	store := &fakeStore{records: map[string]*domain.Employee{"12345678": emp}}
	v := NewVerifier(store)

	identity, err := v.Verify(context.Background(), "12345678", "password123")
	require.NoError(t, err)
	assert.Equal(t, 42, identity.EmployeeCode)

	_, err = v.Verify(context.Background(), "12345678", "password124")
	require.ErrorIs(t, err, ErrInvalidSecret)
}
