package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Identity is the decoded subject carried by every signed token.
// The REST middleware and the chat gateway both resolve callers through it.
type Identity struct {
	UserID   uuid.UUID
	Email    string
	Username string
	Role     string
	Company  string
}

// Verifier is the single capability shared by the REST auth middleware and the
// realtime gateway. Both sides use the same HMAC secret, so a token issued at
// login is valid on the websocket handshake too.
type Verifier interface {
	Issue(identity Identity) (string, error)
	Verify(tokenStr string) (*Identity, error)
}

type hmacVerifier struct {
	secret []byte
	expiry time.Duration
}

func NewHMACVerifier(secret string, expiry time.Duration) Verifier {
	return &hmacVerifier{secret: []byte(secret), expiry: expiry}
}

func (v *hmacVerifier) Issue(identity Identity) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      identity.UserID.String(),
		"email":    identity.Email,
		"username": identity.Username,
		"role":     identity.Role,
		"company":  identity.Company,
		"iat":      now.Unix(),
		"exp":      now.Add(v.expiry).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}

func (v *hmacVerifier) Verify(tokenStr string) (*Identity, error) {
	if tokenStr == "" {
		return nil, ErrMissingToken
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, ErrInvalidToken
	}

	identity := &Identity{UserID: userID}
	if s, ok := claims["email"].(string); ok {
		identity.Email = s
	}
	if s, ok := claims["username"].(string); ok {
		identity.Username = s
	}
	if s, ok := claims["role"].(string); ok {
		identity.Role = s
	}
	if s, ok := claims["company"].(string); ok {
		identity.Company = s
	}
	return identity, nil
}
