package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/batmanhot/logistica-inventario/internal/application/auth"
	"github.com/batmanhot/logistica-inventario/internal/application/dto"
	"github.com/batmanhot/logistica-inventario/internal/domain"
	"github.com/batmanhot/logistica-inventario/pkg/jwt"
	"github.com/batmanhot/logistica-inventario/pkg/logger"
)

const secret = "test-secret"

func newUseCase(t *testing.T, password string) *auth.AuthUseCase {
	t.Helper()
	var hash string
	if password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		require.NoError(t, err)
		hash = string(h)
	}
	uc, err := auth.NewAuthUseCase(
		auth.Credentials{Username: "admin", PasswordHash: hash},
		auth.JWTConfig{Secret: secret, ExpMinutes: 60, Issuer: "logistica-inventario"},
		logger.Nop(),
	)
	require.NoError(t, err)
	return uc
}

func TestLogin_EmiteTokenValido(t *testing.T) {
	uc := newUseCase(t, "s3creta")

	res, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "s3creta"})
	require.NoError(t, err)
	assert.Equal(t, 3600, res.ExpiresIn)
	assert.Equal(t, auth.RoleAdmin, res.Role)

	userID, role, err := jwt.Parse(secret, res.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", userID)
	assert.Equal(t, auth.RoleAdmin, role)
}

func TestLogin_Rechazos(t *testing.T) {
	uc := newUseCase(t, "s3creta")

	_, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Username: "root", Password: "s3creta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Username: "admin"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_ClaveDeDesarrolloSinHash(t *testing.T) {
	uc := newUseCase(t, "")

	_, err := uc.Login(dto.LoginRequest{Username: "admin", Password: auth.DevPassword})
	assert.NoError(t, err)
}
