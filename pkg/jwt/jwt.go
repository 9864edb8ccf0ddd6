// Package jwt firma y verifica los tokens de operador que protegen las escrituras.
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var errNoSecret = errors.New("jwt: secret vacío")

// OperatorClaims identifica al operador (sub) y su rol en la tienda.
type OperatorClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Generate firma con HS256 un token para subject/role que vence en expMinutes.
func Generate(secret, subject, role, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", errNoSecret
	}
	issuedAt := time.Now()
	claims := OperatorClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Duration(expMinutes) * time.Minute)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// Parse verifica firma HS256 y vencimiento; devuelve el operador y su rol.
func Parse(secret, tokenString string) (subject, role string, err error) {
	if secret == "" {
		return "", "", errNoSecret
	}
	var claims OperatorClaims
	_, err = jwt.ParseWithClaims(tokenString, &claims,
		func(*jwt.Token) (any, error) { return []byte(secret), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", "", fmt.Errorf("jwt: token de operador: %w", err)
	}
	return claims.Subject, claims.Role, nil
}
