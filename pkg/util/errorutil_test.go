package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainErrorPassthrough(t *testing.T) {
	orig := NewDomainError("UNAUTHORIZED", "invalid credentials", http.StatusUnauthorized, nil)
	mapped := ToDomainError(orig)
	assert.Same(t, orig, mapped)
}

func TestToDomainErrorWrapped(t *testing.T) {
	wrapped := fmt.Errorf("login: %w", NewUnauthorized("invalid credentials"))
	mapped := ToDomainError(wrapped)
	require.NotNil(t, mapped)
	assert.Equal(t, http.StatusUnauthorized, mapped.HTTPStatus)
}

func TestToDomainErrorNoRows(t *testing.T) {
	mapped := ToDomainError(pgx.ErrNoRows)
	require.NotNil(t, mapped)
	assert.Equal(t, http.StatusNotFound, mapped.HTTPStatus)
	assert.Equal(t, "NOT_FOUND", mapped.Code)
}

func TestToDomainErrorGeneric(t *testing.T) {
	mapped := ToDomainError(errors.New("boom"))
	require.NotNil(t, mapped)
	assert.Equal(t, http.StatusInternalServerError, mapped.HTTPStatus)
	assert.Equal(t, "INTERNAL_ERROR", mapped.Code)
}

func TestToDomainErrorNil(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))
}
