// Package token issues and verifies the HS256 bearer tokens that identify callers.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/code19m/errx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	CodeExpiredToken = "EXPIRED_TOKEN"
	CodeInvalidToken = "INVALID_TOKEN"

	minSecretKeySize = 16
)

// JWTMaker signs and verifies JSON Web Tokens with a shared secret.
type JWTMaker struct {
	secretKey string
	issuer    string
}

// NewJWTMaker creates a new JWTMaker. A non-empty issuer is required on verified tokens.
func NewJWTMaker(secretKey, issuer string) (*JWTMaker, error) {
	if len(secretKey) < minSecretKeySize {
		return nil, errx.New(fmt.Sprintf("invalid key size: must be at least %d characters", minSecretKeySize))
	}
	return &JWTMaker{secretKey: secretKey, issuer: issuer}, nil
}

// CreateToken issues a token for sub valid for duration.
func (maker *JWTMaker) CreateToken(sub string, duration time.Duration) (string, *Payload, error) {
	payload, err := NewPayload(sub, duration)
	if err != nil {
		return "", nil, errx.Wrap(err)
	}
	payload.Issuer = maker.issuer

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	token, err := jwtToken.SignedString([]byte(maker.secretKey))
	if err != nil {
		return "", nil, errx.Wrap(err)
	}

	return token, payload, nil
}

// VerifyToken checks the signature and time claims of token and returns its payload.
func (maker *JWTMaker) VerifyToken(token string) (*Payload, error) {
	keyFunc := func(token *jwt.Token) (any, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, errx.New("unexpected signing method", errx.WithCode(CodeInvalidToken))
		}
		return []byte(maker.secretKey), nil
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if maker.issuer != "" {
		opts = append(opts, jwt.WithIssuer(maker.issuer))
	}

	jwtToken, err := jwt.ParseWithClaims(token, &Payload{}, keyFunc, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errx.New(
				"token is expired",
				errx.WithCode(CodeExpiredToken),
				errx.WithType(errx.T_Authentication),
			)
		}
		return nil, errx.Wrap(err, errx.WithCode(CodeInvalidToken), errx.WithType(errx.T_Authentication))
	}

	payload, ok := jwtToken.Claims.(*Payload)
	if !ok || payload.Subject == "" {
		return nil, errx.New(
			"invalid token claims",
			errx.WithCode(CodeInvalidToken),
			errx.WithType(errx.T_Authentication),
		)
	}

	return payload, nil
}

// Payload contains the claims of a caller token.
type Payload struct {
	ID        string           `json:"jti,omitempty"`
	Subject   string           `json:"sub"` // user id
	IssuedAt  *jwt.NumericDate `json:"iat,omitempty"`
	ExpiresAt *jwt.NumericDate `json:"exp,omitempty"`
	NotBefore *jwt.NumericDate `json:"nbf,omitempty"`
	Issuer    string           `json:"iss,omitempty"`
}

// NewPayload creates a payload for sub expiring after duration.
func NewPayload(sub string, duration time.Duration) (*Payload, error) {
	tokenID, err := uuid.NewRandom()
	if err != nil {
		return nil, errx.Wrap(err)
	}

	now := time.Now()
	return &Payload{
		ID:        tokenID.String(),
		Subject:   sub,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		NotBefore: jwt.NewNumericDate(now),
	}, nil
}

func (payload *Payload) GetExpirationTime() (*jwt.NumericDate, error) {
	return payload.ExpiresAt, nil
}

func (payload *Payload) GetIssuedAt() (*jwt.NumericDate, error) {
	return payload.IssuedAt, nil
}

func (payload *Payload) GetNotBefore() (*jwt.NumericDate, error) {
	return payload.NotBefore, nil
}

func (payload *Payload) GetIssuer() (string, error) {
	return payload.Issuer, nil
}

func (payload *Payload) GetSubject() (string, error) {
	return payload.Subject, nil
}

func (payload *Payload) GetAudience() (jwt.ClaimStrings, error) {
	return nil, nil
}
