package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/MercadoLocal-api/internal/application/dto"
	"github.com/jhoicas/MercadoLocal-api/internal/domain"
	"github.com/jhoicas/MercadoLocal-api/internal/domain/entity"
	"github.com/jhoicas/MercadoLocal-api/internal/domain/repository"
	"github.com/jhoicas/MercadoLocal-api/pkg/jwt"
	"github.com/jhoicas/MercadoLocal-api/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// PathAfterLogin ruta a la que navega el cliente después de iniciar sesión.
const PathAfterLogin = "/dashboard"

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y logout.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	jwtCfg      JWTConfig
	hashCost    int
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, sessionRepo: sessionRepo, jwtCfg: jwtCfg, hashCost: bcrypt.DefaultCost}
}

// WithHashCost ajusta el costo de bcrypt (los tests usan bcrypt.MinCost).
func (uc *AuthUseCase) WithHashCost(cost int) *AuthUseCase {
	uc.hashCost = cost
	return uc
}

// RegisterUser crea un usuario: hashea password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	email := normalizeEmail(in.Email)
	if email == "" || len(in.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.hashCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password, abre una sesión y retorna su token.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	now := time.Now()
	session := &entity.Session{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute),
	}
	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, session.ID, user.ID, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: session.ExpiresAt,
		User:      *toUserResponse(user),
		Redirect:  PathAfterLogin,
	}, nil
}

// Logout revoca la sesión. Revocar una sesión ya revocada no es error.
func (uc *AuthUseCase) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return domain.ErrUnauthenticated
	}
	return uc.sessionRepo.Revoke(ctx, sessionID)
}

// Principal identidad resuelta junto a la sesión que la respalda.
type Principal struct {
	Identity  entity.Identity
	SessionID string
}

// SessionResolver determina la identidad actual a partir del token de sesión.
type SessionResolver struct {
	sessionRepo repository.SessionRepository
	secret      string
	log         *logger.Logger
	now         func() time.Time
}

// NewSessionResolver construye el resolvedor.
func NewSessionResolver(sessionRepo repository.SessionRepository, secret string, log *logger.Logger) *SessionResolver {
	return &SessionResolver{sessionRepo: sessionRepo, secret: secret, log: log, now: time.Now}
}

// Resolve devuelve:
//   - (principal, nil) si el token corresponde a una sesión vigente;
//   - (nil, nil) si no hay sesión (token vacío, inválido, expirado o revocado);
//   - (nil, ErrAuthUnavailable) si no se pudo consultar el almacén de sesiones.
func (r *SessionResolver) Resolve(ctx context.Context, token string) (*Principal, error) {
	if token == "" {
		return nil, nil
	}
	claims, err := jwt.Parse(r.secret, token)
	if err != nil {
		return nil, nil
	}
	session, err := r.sessionRepo.GetByID(ctx, claims.SessionID())
	if err != nil {
		r.log.Error().Err(err).Str("session_id", claims.SessionID()).Msg("resolver sesión")
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, errors.Join(domain.ErrAuthUnavailable, err)
	}
	if session == nil || !session.Active(r.now()) || session.UserID != claims.UserID {
		return nil, nil
	}
	return &Principal{
		Identity:  entity.Identity{ID: claims.UserID, Email: claims.Email},
		SessionID: session.ID,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
