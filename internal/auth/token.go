package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Ncongwana-808/autorepair-erp/internal/model"
)

// ErrInvalidToken is the single failure result of Decode. Bad signature,
// malformed structure, expiry and missing claims are deliberately not
// distinguished so the codec cannot be used as an oracle.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims are the identity fields embedded in every access token. They are
// readable by anyone holding the token; the guarantee is integrity and
// expiry, not secrecy.
type Claims struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
	jwt.RegisteredClaims
}

// Codec signs and verifies HS256 bearer tokens with a server-held secret.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec builds a codec with the given secret and default token lifetime.
func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the user with the codec's default TTL.
func (c *Codec) Issue(u *model.User) (string, error) {
	return c.IssueWithTTL(u, c.ttl)
}

// IssueWithTTL signs a token with an explicit lifetime.
func (c *Codec) IssueWithTTL(u *model.User, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   u.ID,
		Username: u.Username,
		Role:     u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Decode verifies signature and expiry and returns the embedded claims.
// Every failure mode yields ErrInvalidToken.
func (c *Codec) Decode(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == uuid.Nil || claims.Username == "" || claims.Role == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
