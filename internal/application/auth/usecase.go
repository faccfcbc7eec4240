package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/jhoicas/Inventario-consola/internal/application/dto"
	"github.com/jhoicas/Inventario-consola/internal/application/usecase"
	"github.com/jhoicas/Inventario-consola/internal/domain"
	"github.com/jhoicas/Inventario-consola/internal/domain/repository"
	"github.com/jhoicas/Inventario-consola/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login y cambio de contraseña. Las credenciales las verifica el gateway;
// la consola solo emite su propio JWT con el rol para el RBAC de las rutas.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password contra el gateway, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.Authenticate(ctx, in.Email, in.Password)
	if err != nil {
		// 404 y 422 del gateway también significan credenciales inválidas para el cliente.
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidInput) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: uc.jwtCfg.ExpMinutes * 60,
		User:      usecase.ToUserResponse(user),
	}, nil
}

// ChangePassword cambia la contraseña del usuario autenticado; el gateway valida la actual.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, userID int64, in dto.ChangePasswordRequest) error {
	if err := dto.Validate(in); err != nil {
		return err
	}
	return uc.userRepo.ChangePassword(ctx, userID, in.CurrentPassword, in.NewPassword)
}
