package app

import (
	"time"

	"github.com/avenlyn/commerce-backend/internal/pkg/env"
	"github.com/avenlyn/commerce-backend/internal/pkg/logger"
)

type Config struct {
	JWTSecretKey    string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

func LoadConfig(log *logger.Logger) Config {
	jwtSecretKey := env.Get("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTLSeconds := env.GetAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTokenTTLSeconds := env.GetAsInt("REFRESH_TOKEN_TTL", 86400, log)
	return Config{
		JWTSecretKey:    jwtSecretKey,
		AccessTokenTTL:  time.Duration(accessTokenTTLSeconds) * time.Second,
		RefreshTokenTTL: time.Duration(refreshTokenTTLSeconds) * time.Second,
	}
}
