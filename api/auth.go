/*
auth.go - Optional JWT bearer authentication

PURPOSE:
  Guards the API with HS256 bearer tokens. When no secret is
  configured the middleware passes every request through, matching the
  open-by-default deployment used on trusted office networks.

TOKEN FLOW:
  POST /api/auth/token with the admin credentials returns a signed
  token; subsequent requests present it as "Authorization: Bearer ...".
*/
package api

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Auth issues and validates bearer tokens. Zero-value (no secret)
// means auth is disabled.
type Auth struct {
	secret     []byte
	expiration time.Duration
	adminUser  string
	adminPass  string
}

// Claims is the token payload.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// NewAuth configures token auth. An empty secret disables it.
func NewAuth(secret, adminUser, adminPass string, expiration time.Duration) *Auth {
	return &Auth{
		secret:     []byte(secret),
		expiration: expiration,
		adminUser:  adminUser,
		adminPass:  adminPass,
	}
}

// Enabled reports whether a secret is configured.
func (a *Auth) Enabled() bool { return len(a.secret) > 0 }

// GenerateToken signs a token for the given user.
func (a *Auth) GenerateToken(username string) (string, error) {
	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(a.expiration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// ValidateToken parses and verifies a token string.
func (a *Auth) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(_ *jwt.Token) (interface{}, error) {
		return a.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}

// Middleware rejects requests without a valid bearer token. Passes
// everything through when auth is disabled.
func (a *Auth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !a.Enabled() {
			next.ServeHTTP(w, r)
			return
		}

		var tokenString string
		authHeader := r.Header.Get("Authorization")
		if parts := strings.Split(authHeader, " "); len(parts) == 2 && parts[0] == "Bearer" {
			tokenString = parts[1]
		}
		if tokenString == "" {
			writeError(w, http.StatusUnauthorized, "Missing bearer token", nil)
			return
		}

		if _, err := a.ValidateToken(tokenString); err != nil {
			writeError(w, http.StatusUnauthorized, "Invalid token", err)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// TokenRequest is the credential payload for token issuance.
type TokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse carries a freshly signed token.
type TokenResponse struct {
	Token string `json:"token"`
}

// TokenHandler issues a token for valid admin credentials.
// POST /api/auth/token
func (a *Auth) TokenHandler(w http.ResponseWriter, r *http.Request) {
	if !a.Enabled() {
		writeError(w, http.StatusNotFound, "Authentication is disabled", nil)
		return
	}

	var req TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(a.adminUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(a.adminPass)) == 1
	if !userOK || !passOK {
		writeError(w, http.StatusUnauthorized, "Invalid credentials", nil)
		return
	}

	token, err := a.GenerateToken(req.Username)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to sign token", err)
		return
	}

	writeJSON(w, http.StatusOK, TokenResponse{Token: token})
}
