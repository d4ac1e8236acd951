package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/avenlyn/commerce-backend/internal/data/records"
	userrepo "github.com/avenlyn/commerce-backend/internal/data/repos/user"
	"github.com/avenlyn/commerce-backend/internal/domain"
	"github.com/avenlyn/commerce-backend/internal/domain/valueobject"
	"github.com/avenlyn/commerce-backend/internal/pkg/ctxutil"
	pkgerrors "github.com/avenlyn/commerce-backend/internal/pkg/errors"
	"github.com/avenlyn/commerce-backend/internal/pkg/logger"
	"github.com/avenlyn/commerce-backend/internal/pkg/seqid"
)

type AuthService interface {
	Register(ctx context.Context, email, firstName, lastName, password string) error
	Login(ctx context.Context, email, password string) (string, string, error)
	Refresh(ctx context.Context) (string, string, error)
	Logout(ctx context.Context) error
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
	GetAccessTTL() time.Duration
}

type JWTClaims struct {
	jwt.RegisteredClaims
}

type authService struct {
	db            *gorm.DB
	log           *logger.Logger
	userRepo      userrepo.UserRepo
	userTokenRepo userrepo.UserTokenRepo
	jwtSecretKey  string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewAuthService(db *gorm.DB, log *logger.Logger, userRepo userrepo.UserRepo, userTokenRepo userrepo.UserTokenRepo, jwtSecretKey string, accessTTL, refreshTTL time.Duration) AuthService {
	return &authService{
		db:            db,
		log:           log.With("service", "AuthService"),
		userRepo:      userRepo,
		userTokenRepo: userTokenRepo,
		jwtSecretKey:  jwtSecretKey,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (as *authService) Register(ctx context.Context, email, firstName, lastName, password string) error {
	address, err := valueobject.NewEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return err
	}
	first, err := valueobject.NewFirstName(strings.TrimSpace(firstName))
	if err != nil {
		return err
	}
	last, err := valueobject.NewLastName(strings.TrimSpace(lastName))
	if err != nil {
		return err
	}
	if len(password) < 8 {
		return domain.Validation("password", "must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := as.userRepo.EmailExists(ctx, tx, address.String())
		if err != nil {
			return err
		}
		if exists {
			return domain.Conflict("email already registered")
		}
		return as.userRepo.Create(ctx, tx, &records.User{
			ID:        seqid.New(),
			Email:     address.String(),
			Password:  string(hash),
			FirstName: first.String(),
			LastName:  last.String(),
		})
	})
}

func (as *authService) Login(ctx context.Context, email, password string) (string, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := as.userRepo.GetByEmail(ctx, nil, email)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrNotFound) {
			return "", "", pkgerrors.ErrUnauthorized
		}
		return "", "", fmt.Errorf("fetch user by email: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", "", pkgerrors.ErrUnauthorized
	}

	var accessToken, refreshToken string
	if err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Login is a convenient moment to sweep sessions whose refresh
		// window has closed.
		if err := as.userTokenRepo.DeleteExpired(ctx, tx, time.Now()); err != nil {
			as.log.Warn("failed to purge expired tokens", "error", err)
		}
		tok, err := as.generateAccessToken(u)
		if err != nil {
			return fmt.Errorf("generate access token: %w", err)
		}
		accessToken = tok
		refreshToken = uuid.New().String()
		return as.userTokenRepo.Create(ctx, tx, &records.UserToken{
			ID:           seqid.New(),
			UserID:       u.ID,
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			ExpiresAt:    time.Now().Add(as.refreshTTL),
		})
	}); err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

func (as *authService) Refresh(ctx context.Context) (string, string, error) {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || rd.RefreshToken == "" {
		return "", "", pkgerrors.ErrUnauthorized
	}

	var accessToken, newRefreshToken string
	err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := as.userTokenRepo.GetByRefreshToken(ctx, tx, rd.RefreshToken)
		if err != nil {
			if errors.Is(err, pkgerrors.ErrNotFound) {
				return pkgerrors.ErrUnauthorized
			}
			return fmt.Errorf("fetch refresh token: %w", err)
		}
		if existing.ExpiresAt.Before(time.Now()) {
			_ = as.userTokenRepo.DeleteByID(ctx, tx, existing.ID)
			return pkgerrors.ErrUnauthorized
		}
		u, err := as.userRepo.GetByID(ctx, tx, existing.UserID)
		if err != nil {
			return fmt.Errorf("load user for refresh: %w", err)
		}
		tok, err := as.generateAccessToken(u)
		if err != nil {
			return fmt.Errorf("generate access token: %w", err)
		}
		accessToken = tok
		newRefreshToken = uuid.New().String()
		if err := as.userTokenRepo.Create(ctx, tx, &records.UserToken{
			ID:           seqid.New(),
			UserID:       u.ID,
			AccessToken:  accessToken,
			RefreshToken: newRefreshToken,
			ExpiresAt:    time.Now().Add(as.refreshTTL),
		}); err != nil {
			return err
		}
		return as.userTokenRepo.DeleteByID(ctx, tx, existing.ID)
	})
	if err != nil {
		return "", "", err
	}
	return accessToken, newRefreshToken, nil
}

func (as *authService) Logout(ctx context.Context) error {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || rd.TokenString == "" {
		return pkgerrors.ErrUnauthorized
	}
	return as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		t, err := as.userTokenRepo.GetByAccessToken(ctx, tx, rd.TokenString)
		if err != nil {
			if errors.Is(err, pkgerrors.ErrNotFound) {
				return nil
			}
			return err
		}
		return as.userTokenRepo.DeleteByID(ctx, tx, t.ID)
	})
}

func (as *authService) generateAccessToken(u *records.User) (string, error) {
	claims := JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(as.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(as.jwtSecretKey))
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	if tokenString == "" {
		return ctx, pkgerrors.ErrUnauthorized
	}
	parsed, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(as.jwtSecretKey), nil
	})
	if err != nil {
		return ctx, fmt.Errorf("parse token: %w", err)
	}
	claims, ok := parsed.Claims.(*JWTClaims)
	if !ok || !parsed.Valid {
		return ctx, pkgerrors.ErrUnauthorized
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, fmt.Errorf("invalid user id in token: %w", err)
	}

	// A missing token row means the session was logged out.
	stored, err := as.userTokenRepo.GetByAccessToken(ctx, nil, tokenString)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrNotFound) {
			return ctx, pkgerrors.ErrUnauthorized
		}
		return ctx, fmt.Errorf("fetch token: %w", err)
	}

	return ctxutil.WithRequestData(ctx, &ctxutil.RequestData{
		TokenString:  tokenString,
		RefreshToken: stored.RefreshToken,
		UserID:       userID,
	}), nil
}

func (as *authService) GetAccessTTL() time.Duration {
	return as.accessTTL
}
