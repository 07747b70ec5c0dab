package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/gdugdh24/mentorship-backend/internal/domain"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrTokenExpired = errors.New("token expired")

// Claims carried by access tokens. Tokens are issued by the account service;
// this package only needs Issue for tooling and tests.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	jwtlib.RegisteredClaims
}

type TokenVerifier interface {
	Verify(token string) (uuid.UUID, error)
}

type HMACService struct {
	secret []byte
	issuer string
	now    func() time.Time
}

func NewHMACService(secret, issuer string) *HMACService {
	return &HMACService{
		secret: []byte(secret),
		issuer: issuer,
		now:    time.Now,
	}
}

func (s *HMACService) Issue(userID uuid.UUID, ttl time.Duration) (string, error) {
	if len(s.secret) == 0 || ttl <= 0 {
		return "", fmt.Errorf("cannot issue token: %w", domain.ErrInvalidToken)
	}
	now := s.now().UTC()
	c := Claims{
		UserID: userID,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   userID.String(),
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c).SignedString(s.secret)
}

// Verify returns the caller id from a valid HS256 access token.
func (s *HMACService) Verify(token string) (uuid.UUID, error) {
	opts := []jwtlib.ParserOption{
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithTimeFunc(s.now),
		jwtlib.WithExpirationRequired(),
	}
	if s.issuer != "" {
		opts = append(opts, jwtlib.WithIssuer(s.issuer))
	}

	var c Claims
	tok, err := jwtlib.NewParser(opts...).ParseWithClaims(token, &c, func(*jwtlib.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return uuid.Nil, ErrTokenExpired
		}
		return uuid.Nil, domain.ErrInvalidToken
	}
	if tok == nil || !tok.Valid || c.UserID == uuid.Nil {
		return uuid.Nil, domain.ErrInvalidToken
	}
	return c.UserID, nil
}
