package services

import (
	"fmt"
	"os"

	"github.com/GivenCloud/Hotel-Manager/errors"
	"github.com/dgrijalva/jwt-go"
)

// GetUserIDFromToken extracts the user id and role from a verified bearer
// token. Token issuance lives outside this service; only the shared secret
// is configured here.
func GetUserIDFromToken(tokenString string) (uint, int, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "invalid token", err)
	}

	claimsMap, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "cannot parse token claims", nil)
	}

	userInfo, ok := claimsMap["userinfo"].(map[string]interface{})
	if !ok {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "user info missing from token", nil)
	}

	userID, okID := userInfo["userid"].(float64)
	if !okID {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "user id missing from token", nil)
	}

	role, okRole := userInfo["role"].(float64)
	if !okRole {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "role missing from token", nil)
	}

	return uint(userID), int(role), nil
}
