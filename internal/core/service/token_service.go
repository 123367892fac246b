package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/catalogo/catalog-api/internal/core/domain"
	"github.com/catalogo/catalog-api/internal/core/ports"
	"github.com/catalogo/catalog-api/internal/pkg/metrics"
	"github.com/catalogo/catalog-api/pkg/logger"
)

const defaultTokenTTL = 2 * time.Hour

// TokenConfig holds the signing settings for issued tokens.
type TokenConfig struct {
	Secret   string
	Issuer   string
	Audience string
	TTL      time.Duration
}

// tokenClaims is the JWT payload: sub, jti, iat, exp, iss and aud come from
// the registered claims.
type tokenClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues HS256 bearer tokens and tracks them in a TokenStore so
// they can be revoked before they expire.
type TokenService struct {
	store  ports.TokenStore
	cfg    TokenConfig
	now    func() time.Time
	logger zerolog.Logger
}

func NewTokenService(store ports.TokenStore, cfg TokenConfig, logger zerolog.Logger) *TokenService {
	if cfg.TTL <= 0 {
		cfg.TTL = defaultTokenTTL
	}
	return &TokenService{store: store, cfg: cfg, now: time.Now, logger: logger}
}

// Issue signs a token for the customer and registers it in the store. The
// token is only returned once it has been saved.
func (s *TokenService) Issue(ctx context.Context, customer *domain.Customer) (string, error) {
	if s.cfg.Secret == "" {
		return "", domain.ErrSigningKeyMissing
	}

	now := s.now().UTC()
	claims := tokenClaims{
		Email: customer.Email,
		Role:  customer.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   customer.ID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TTL)),
			Issuer:    s.cfg.Issuer,
		},
	}
	if s.cfg.Audience != "" {
		claims.Audience = jwt.ClaimStrings{s.cfg.Audience}
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	if err := s.store.Save(ctx, signed, s.cfg.TTL); err != nil {
		return "", fmt.Errorf("save token: %w", err)
	}

	metrics.TokensIssuedTotal.Inc()
	s.logger.Debug().
		Str("customer_id", customer.ID).
		Str("token", logger.Fingerprint(signed)).
		Msg("token issued")
	return signed, nil
}

// Save registers a token as live for the configured lifetime.
func (s *TokenService) Save(ctx context.Context, token string) error {
	return s.store.Save(ctx, token, s.cfg.TTL)
}

// Revoke removes a token from the store. Revoking an unknown token is a no-op.
func (s *TokenService) Revoke(ctx context.Context, token string) error {
	if err := s.store.Remove(ctx, token); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	metrics.TokensRevokedTotal.Inc()
	s.logger.Debug().Str("token", logger.Fingerprint(token)).Msg("token revoked")
	return nil
}

// IsValid reports whether the token still identifies a caller. See Identity.
func (s *TokenService) IsValid(ctx context.Context, token string) bool {
	_, ok := s.Identity(ctx, token)
	return ok
}

// Identity validates the token and returns the caller it identifies. A token
// is valid only if it is non-blank, still present in the store, correctly
// signed, issued by us for our audience and not expired.
func (s *TokenService) Identity(ctx context.Context, token string) (*domain.Identity, bool) {
	if strings.TrimSpace(token) == "" {
		metrics.TokenValidationsTotal.WithLabelValues("blank").Inc()
		return nil, false
	}

	live, err := s.store.Exists(ctx, token)
	if err != nil {
		s.logger.Warn().Err(err).Str("token", logger.Fingerprint(token)).Msg("token store lookup failed")
		metrics.TokenValidationsTotal.WithLabelValues("store_error").Inc()
		return nil, false
	}
	if !live {
		metrics.TokenValidationsTotal.WithLabelValues("unknown").Inc()
		return nil, false
	}

	claims, err := s.parse(token)
	if err != nil {
		s.logger.Debug().Err(err).Str("token", logger.Fingerprint(token)).Msg("token rejected")
		metrics.TokenValidationsTotal.WithLabelValues(rejectReason(err)).Inc()
		return nil, false
	}

	metrics.TokenValidationsTotal.WithLabelValues("valid").Inc()
	identity := &domain.Identity{
		CustomerID: claims.Subject,
		Email:      claims.Email,
		Role:       claims.Role,
		TokenID:    claims.ID,
	}
	if claims.ExpiresAt != nil {
		identity.ExpiresAt = claims.ExpiresAt.Time
	}
	return identity, true
}

func (s *TokenService) parse(token string) (*tokenClaims, error) {
	if s.cfg.Secret == "" {
		return nil, domain.ErrSigningKeyMissing
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithLeeway(0),
		jwt.WithTimeFunc(s.now),
	}
	if s.cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.cfg.Issuer))
	}
	if s.cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(s.cfg.Audience))
	}

	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return []byte(s.cfg.Secret), nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "expired"
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "bad_signature"
	case errors.Is(err, jwt.ErrTokenInvalidIssuer), errors.Is(err, jwt.ErrTokenInvalidAudience):
		return "wrong_issuer"
	default:
		return "malformed"
	}
}
