package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/betrybe/agrix/internal/core/domain"
)

const tokenIssuer = "agrix"

// tokenZone is the fixed offset the expiry is computed in at issuance.
// Verification uses wall-clock time at the moment of the call; clock skew
// between environments is an operational assumption, not handled here.
var tokenZone = time.FixedZone("-03:00", -3*60*60)

// TokenService issues and verifies the HMAC-SHA256 signed bearer tokens
// handed out at login. Tokens are stateless: validity is entirely a
// function of signature, issuer and expiry at verification time.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService builds a TokenService signing with secret. A non-positive
// ttl falls back to the default 48 hours.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 48 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue builds a signed token carrying the person's username as subject.
// The role is intentionally left out of the claims: it is read fresh from
// the person store on every request.
func (s *TokenService) Issue(person *domain.Person) (string, error) {
	now := s.now().In(tokenZone)
	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   person.Username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify validates signature, issuer and expiry, and returns the subject.
// All failure modes collapse to domain.ErrInvalidToken so callers cannot
// tell a forged token from an expired one.
func (s *TokenService) Verify(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
		// Lax base64 decoding ignores the trailing padding bits of the last
		// signature character, letting some single-byte edits through.
		jwt.WithStrictDecoding(),
	)
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", domain.ErrInvalidToken
	}
	return claims.Subject, nil
}
