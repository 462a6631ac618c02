package http

import (
	"github.com/go-translator/internal/application/history"
	"github.com/go-translator/internal/application/language"
	"github.com/go-translator/internal/application/translate"
	jwtinfra "github.com/go-translator/internal/infrastructure/jwt"
	"github.com/rs/zerolog"
)

// Deps holds the application services and cross-cutting dependencies for the router.
type Deps struct {
	Translate translate.Service
	Languages language.Service
	History   history.Service
	// JWTProvider is optional; nil disables authentication.
	JWTProvider *jwtinfra.Provider
	Logger      zerolog.Logger
}
