package service

import (
	"context"
	"time"

	"revenue-distribution-engine/internal/core/ports"
	"revenue-distribution-engine/pkg/apperror"

	"github.com/rs/zerolog"
)

// ClientCredential is one registered platform client: public id plus the
// argon2id hash of its API key.
type ClientCredential struct {
	ID         string
	SecretHash string
}

// AuthServiceImpl implements ports.AuthService against a static client
// registry loaded from configuration.
type AuthServiceImpl struct {
	clients  map[string]ClientCredential
	hashSvc  ports.HashService
	tokenSvc ports.TokenService
	log      zerolog.Logger
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(
	clients []ClientCredential,
	hashSvc ports.HashService,
	tokenSvc ports.TokenService,
	log zerolog.Logger,
) *AuthServiceImpl {
	registry := make(map[string]ClientCredential, len(clients))
	for _, c := range clients {
		registry[c.ID] = c
	}
	return &AuthServiceImpl{
		clients:  registry,
		hashSvc:  hashSvc,
		tokenSvc: tokenSvc,
		log:      log,
	}
}

// Login verifies the client's API key and issues a JWT. Unknown clients and
// bad keys return the same error so the response does not leak which ids
// exist.
func (s *AuthServiceImpl) Login(ctx context.Context, clientID, apiKey string) (string, time.Time, error) {
	client, ok := s.clients[clientID]
	if !ok {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	match, err := s.hashSvc.Verify(apiKey, client.SecretHash)
	if err != nil {
		s.log.Error().Err(err).Str("client_id", clientID).Msg("credential verification failed")
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}
	if !match {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	token, expiresAt, err := s.tokenSvc.Generate(clientID)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(err)
	}

	s.log.Info().Str("client_id", clientID).Msg("client authenticated")
	return token, expiresAt, nil
}
