package service

import (
	"context"
	"errors"
	"time"

	"plastgest/internal/dto"
	"plastgest/internal/model"
	"plastgest/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 10

// Claims travel inside both access and refresh tokens.
type Claims struct {
	UserID string `json:"user_id"`
	Nome   string `json:"nome"`
	CPF    string `json:"cpf"`
	RoleID int    `json:"role_id"`
	jwt.RegisteredClaims
}

// AuthService handles registration, credential verification and the
// access/refresh token pair. Refresh tokens are kept server-side so logout
// revokes them immediately.
type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.RefreshResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}

type authService struct {
	usuarioRepo repository.UsuarioRepository
	tokenRepo   repository.TokenRepository

	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewAuthService(
	usuarioRepo repository.UsuarioRepository,
	tokenRepo repository.TokenRepository,
	accessSecret, refreshSecret string,
	accessTTL, refreshTTL time.Duration,
) AuthService {
	return &authService{
		usuarioRepo:   usuarioRepo,
		tokenRepo:     tokenRepo,
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error) {
	role := model.Role(req.RoleID)
	if !role.Valid() {
		return nil, &RequisicaoInvalidaError{Motivo: "role_id inválido"}
	}

	if _, err := s.usuarioRepo.FindByCPF(ctx, req.CPF); err == nil {
		return nil, ErrCPFDuplicado
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcryptCost)
	if err != nil {
		return nil, err
	}

	usuario := model.Usuario{
		Nome:      req.Nome,
		CPF:       req.CPF,
		SenhaHash: string(hash),
		Role:      role,
	}
	if err := s.usuarioRepo.Create(ctx, &usuario); err != nil {
		// A concurrent register with the same CPF can slip past the lookup
		// above and surface here as a unique violation.
		if isDuplicateKey(err) {
			return nil, ErrCPFDuplicado
		}
		return nil, err
	}

	return &dto.RegisterResponse{
		Mensagem:  "Usuário registrado com sucesso.",
		UsuarioID: usuario.ID.String(),
	}, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := s.usuarioRepo.FindByCPF(ctx, req.CPF)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCredenciaisInvalidas
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte(req.Senha)); err != nil {
		return nil, ErrCredenciaisInvalidas
	}

	accessToken, err := s.signToken(usuario, s.accessSecret, s.accessTTL)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.signToken(usuario, s.refreshSecret, s.refreshTTL)
	if err != nil {
		return nil, err
	}
	if err := s.tokenRepo.Salvar(ctx, refreshToken, usuario.ID, s.refreshTTL); err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		RoleID:       int(usuario.Role),
	}, nil
}

// Refresh issues a new access token. The refresh token must still exist in
// the store (not logged out) and carry a valid signature.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.RefreshResponse, error) {
	userID, err := s.tokenRepo.Buscar(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNaoEncontrado) {
			return nil, ErrRefreshInvalido
		}
		return nil, err
	}

	claims, err := s.parseToken(refreshToken, s.refreshSecret)
	if err != nil {
		return nil, ErrRefreshInvalido
	}
	if claims.UserID != userID.String() {
		return nil, ErrRefreshInvalido
	}

	usuario, err := s.usuarioRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRefreshInvalido
		}
		return nil, err
	}

	accessToken, err := s.signToken(usuario, s.accessSecret, s.accessTTL)
	if err != nil {
		return nil, err
	}
	return &dto.RefreshResponse{AccessToken: accessToken}, nil
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	return s.tokenRepo.Remover(ctx, refreshToken)
}

func (s *authService) signToken(u *model.Usuario, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: u.ID.String(),
		Nome:   u.Nome,
		CPF:    u.CPF,
		RoleID: int(u.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func (s *authService) parseToken(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalido
	}
	return claims, nil
}
