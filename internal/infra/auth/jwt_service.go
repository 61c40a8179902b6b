// Package auth verifies the bearer tokens that identify community members.
package auth

import (
	"time"

	"lostfound/config"
	"lostfound/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const (
	issuer     = "lostfound"
	clockSkew  = 30 * time.Second
	defaultTTL = 15 * time.Minute
)

// jwtService signs and verifies HS256 access tokens.
type jwtService struct {
	secret []byte
	now    func() time.Time
}

// NewJWTService builds the token service from secretKey.access.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("secretKey.access must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		now:    time.Now,
	}, nil
}

// IssueAccessToken signs a token for subject.
func (s *jwtService) IssueAccessToken(subject, email string, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", errors.New("subject is required")
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}

	now := s.now()
	claims := service.Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign access token")
	}

	return signed, nil
}

// ValidateToken parses tokenString and checks signature, issuer, expiry and subject.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(clockSkew),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "invalid access token")
	}

	if claims.Subject == "" {
		return nil, errors.New("access token has no subject")
	}

	return claims, nil
}
