// Package jwt firma y valida los tokens de acceso de la API.
// El token lleva el ID del usuario y su rol; el middleware RBAC decide con
// esos claims sin consultar la DB, así que un token emitido conserva sus
// privilegios hasta expirar (no hay lista de revocación).
package jwt

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Errores distinguibles de validación. El caller HTTP los colapsa en una
// misma respuesta 401 para no filtrar cuál fue el caso.
var (
	ErrExpired = errors.New("token expirado, inicie sesión de nuevo")
	ErrInvalid = errors.New("token inválido, inicie sesión de nuevo")
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"user_id"`
	Role   string `json:"role"` // "user" | "admin" | "super_admin"
}

// Generate genera un token JWT HS256 firmado que incluye userID y role.
func Generate(secret string, userID int64, role, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID: userID,
		Role:   role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma y vigencia del token y devuelve userID y role.
// Devuelve ErrExpired si venció y ErrInvalid para cualquier otro defecto
// (firma incorrecta, estructura rota, método de firma inesperado).
func Parse(secret, tokenString string) (userID int64, role string, err error) {
	if secret == "" {
		return 0, "", fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, "", ErrExpired
		}
		return 0, "", ErrInvalid
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, "", ErrInvalid
	}
	return claims.UserID, claims.Role, nil
}
