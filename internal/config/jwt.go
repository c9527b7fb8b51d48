package config

import (
	"log"
	"os"
	"sync"
)

type JWTConfig struct {
	Secret string
}

var (
	jwtConfig *JWTConfig
	jwtOnce   sync.Once
)

func LoadJWTConfig() *JWTConfig {
	jwtOnce.Do(func() {
		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			log.Println("Warning: JWT_SECRET not set, tokens will not survive restarts safely")
		}
		jwtConfig = &JWTConfig{
			Secret: secret,
		}
	})
	return jwtConfig
}
