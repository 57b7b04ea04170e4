package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/cmms-inventario/internal/application/dto"
	"github.com/jhoicas/cmms-inventario/internal/domain"
	"github.com/jhoicas/cmms-inventario/internal/domain/entity"
	"github.com/jhoicas/cmms-inventario/internal/domain/repository"
	"github.com/jhoicas/cmms-inventario/pkg/jwt"
)

// Roles derivados del usuario.
const (
	RoleAdmin      = "admin"
	RoleTechnician = "technician"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// SessionStore guarda las sesiones activas por ID (jti). Get devuelve (nil, nil) si no existe.
type SessionStore interface {
	Save(ctx context.Context, session *entity.Session) error
	Get(ctx context.Context, id string) (*entity.Session, error)
	Delete(ctx context.Context, id string) error
}

// Principal identidad autenticada de una petición.
type Principal struct {
	SessionID string
	UserID    int64
	Username  string
	Role      string
}

// AuthUseCase casos de uso de autenticación: login, validación de token y logout.
type AuthUseCase struct {
	users    repository.UserRepository
	sessions SessionStore
	jwtCfg   JWTConfig
	log      zerolog.Logger
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, sessions SessionStore, jwtCfg JWTConfig, log zerolog.Logger) *AuthUseCase {
	return &AuthUseCase{
		users:    users,
		sessions: sessions,
		jwtCfg:   jwtCfg,
		log:      log.With().Str("usecase", "auth").Logger(),
		now:      time.Now,
	}
}

// Login verifica username/password, abre una sesión y firma un JWT cuyo jti es el ID de la sesión.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.TokenResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, domain.Invalid("username y password son requeridos")
	}
	user, err := uc.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ErrForbidden
	}

	now := uc.now()
	ttl := time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute
	session := &entity.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Username:  user.Username,
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
	}
	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("guardar sesión: %w", err)
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, jwt.Subject{
		SessionID: session.ID,
		UserID:    user.ID,
		Username:  user.Username,
		Role:      RoleOf(user),
	}, now, session.ExpiresAt)
	if err != nil {
		return nil, err
	}

	uc.log.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("inicio de sesión")
	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(ttl.Seconds()),
	}, nil
}

// Authenticate valida el token y exige que su sesión siga viva en el store.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (*Principal, error) {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	session, err := uc.sessions.Get(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrSessionExpired
	}
	if session.Expired(uc.now()) {
		_ = uc.sessions.Delete(ctx, session.ID)
		return nil, domain.ErrSessionExpired
	}
	if session.UserID != claims.UserID {
		return nil, domain.ErrUnauthorized
	}
	return &Principal{
		SessionID: session.ID,
		UserID:    claims.UserID,
		Username:  claims.Username,
		Role:      claims.Role,
	}, nil
}

// Logout elimina la sesión; el token deja de ser válido aunque no haya vencido.
func (uc *AuthUseCase) Logout(ctx context.Context, sessionID string) error {
	if err := uc.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("eliminar sesión: %w", err)
	}
	uc.log.Info().Str("session_id", sessionID).Msg("sesión cerrada")
	return nil
}

// Me devuelve el usuario autenticado.
func (uc *AuthUseCase) Me(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// RoleOf deriva el rol a partir del flag de superusuario.
func RoleOf(u *entity.User) string {
	if u.IsSuperuser {
		return RoleAdmin
	}
	return RoleTechnician
}

// HashPassword genera el hash bcrypt de una contraseña en texto plano.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		FullName:    u.FullName,
		IsActive:    u.IsActive,
		IsSuperuser: u.IsSuperuser,
	}
}
