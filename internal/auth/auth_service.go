package auth

import (
	"context"
	"os"
	"strconv"
	"time"

	autherrors "go-hrcore/internal/auth/errors"
	"go-hrcore/internal/person"
	"go-hrcore/internal/shared/clock"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const accessTokenTTL = time.Hour * 8

type Service interface {
	Login(ctx context.Context, email, password string) (LoginResponse, error)
	GetMe(ctx context.Context, personID int64) (AuthResponse, error)
}

type service struct {
	persons person.Repository
	clock   clock.Clock
	logger  *zap.Logger
}

func NewService(persons person.Repository, clk clock.Clock, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{persons: persons, clock: clk, logger: l}
}

func (s *service) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	p, err := s.persons.FindByEmail(ctx, email)
	if err != nil {
		// Same failure for unknown email and bad password.
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}
	if !p.Active {
		s.logger.Warn("login attempt on deactivated person", zap.Int64("person_id", p.ID))
		return LoginResponse{}, autherrors.ErrPersonInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)); err != nil {
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	token, err := s.generateToken(p.ID, string(p.Role))
	if err != nil {
		s.logger.Error("token generation failed", zap.Int64("person_id", p.ID), zap.Error(err))
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("login success", zap.Int64("person_id", p.ID))
	return LoginResponse{
		AccessToken: token,
		Person: AuthResponse{
			ID:    p.ID,
			Name:  p.Name,
			Email: p.Email,
			Role:  string(p.Role),
		},
	}, nil
}

func (s *service) GetMe(ctx context.Context, personID int64) (AuthResponse, error) {
	p, err := s.persons.FindByID(ctx, personID)
	if err != nil {
		return AuthResponse{}, autherrors.ErrPersonNotFound
	}
	return AuthResponse{
		ID:    p.ID,
		Name:  p.Name,
		Email: p.Email,
		Role:  string(p.Role),
	}, nil
}

func (s *service) generateToken(personID int64, role string) (string, error) {
	now := s.clock.Now()
	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(personID, 10),
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(accessTokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
