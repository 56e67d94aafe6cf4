package auth

import (
	"errors"
	"time"

	"crewboard_backend/internal/config"
	"crewboard_backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by the access token. Kind and IsAdmin are convenience copies
// of profile attributes; ownership checks are still done against the database.
type Claims struct {
	ProfileID string             `json:"profile_id"`
	Kind      models.ProfileKind `json:"kind"`
	IsAdmin   bool               `json:"is_admin"`
	jwt.RegisteredClaims
}

var ErrInvalidToken = errors.New("invalid token")

// GenerateToken issues a signed access token for the profile.
func GenerateToken(profile *models.Profile) (string, error) {
	cfg := config.GetConfig()

	claims := &Claims{
		ProfileID: profile.ID,
		Kind:      profile.Kind,
		IsAdmin:   profile.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   profile.ID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(cfg.JWT.TTL) * time.Minute)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.Secret))
}

// ParseToken validates the token signature and expiry and returns the claims.
func ParseToken(tokenStr string) (*Claims, error) {
	cfg := config.GetConfig()

	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
