package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/batmanhot/logistica-inventario/internal/application/dto"
	"github.com/batmanhot/logistica-inventario/internal/domain"
	"github.com/batmanhot/logistica-inventario/pkg/jwt"
	"github.com/batmanhot/logistica-inventario/pkg/logger"
)

// RoleAdmin rol del operador único.
const RoleAdmin = "admin"

// DevPassword clave usada cuando no se configura AUTH_PASSWORD_HASH. Solo para desarrollo.
const DevPassword = "1234"

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Credentials operador habilitado. PasswordHash es un hash bcrypt.
type Credentials struct {
	Username     string
	PasswordHash string
}

// AuthUseCase login del operador único contra las credenciales configuradas.
type AuthUseCase struct {
	username string
	hash     []byte
	jwtCfg   JWTConfig
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth. Sin hash configurado usa DevPassword y lo advierte.
func NewAuthUseCase(creds Credentials, jwtCfg JWTConfig, log *logger.Logger) (*AuthUseCase, error) {
	l := log.Component("auth")
	hash := []byte(creds.PasswordHash)
	if len(hash) == 0 {
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(DevPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		l.Warn().Str("username", creds.Username).Msg("AUTH_PASSWORD_HASH vacío: usando clave de desarrollo")
	}
	return &AuthUseCase{username: creds.Username, hash: hash, jwtCfg: jwtCfg, log: l}, nil
}

// Login verifica usuario/password con bcrypt y genera el JWT.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, domain.Invalid("", "usuario y contraseña son obligatorios")
	}
	if username != uc.username {
		uc.log.Warn().Str("username", username).Msg("login rechazado")
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(uc.hash, []byte(in.Password)); err != nil {
		uc.log.Warn().Str("username", username).Msg("login rechazado")
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, username, RoleAdmin, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("username", username).Msg("login correcto")
	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: uc.jwtCfg.ExpMinutes * 60,
		Username:  username,
		Role:      RoleAdmin,
	}, nil
}
