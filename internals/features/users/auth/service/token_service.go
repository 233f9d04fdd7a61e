// internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"acampamentos_backend/internals/configs"
	dto "acampamentos_backend/internals/features/users/auth/dto"
	authModel "acampamentos_backend/internals/features/users/auth/model"
	helper "acampamentos_backend/internals/helpers"
)

const (
	accessTTLDefault  = 15 * time.Minute
	refreshTTLDefault = 30 * 24 * time.Hour
)

func getJWTSecret() (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT_SECRET is not set")
	}
	return configs.JWTSecret, nil
}

func getRefreshSecret() (string, error) {
	if configs.JWTRefreshSecret == "" {
		return "", errors.New("JWT_REFRESH_SECRET is not set")
	}
	return configs.JWTRefreshSecret, nil
}

// computeRefreshHash keeps only an HMAC of the refresh token in the DB.
func computeRefreshHash(token, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}

func buildAccessClaims(user authModel.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":   user.ID.String(),
		"name":  user.Name,
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(accessTTLDefault).Unix(),
	}
}

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}
}

// issueTokenPair signs access+refresh and persists the refresh hash.
func issueTokenPair(db *gorm.DB, c *fiber.Ctx, user authModel.UserModel) (*dto.TokenPairResponse, error) {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return nil, err
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(user, now)).SignedString([]byte(jwtSecret))
	if err != nil {
		return nil, err
	}
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(user.ID, now)).SignedString([]byte(refreshSecret))
	if err != nil {
		return nil, err
	}

	rt := authModel.RefreshTokenModel{
		UserID:    user.ID,
		Token:     computeRefreshHash(refresh, refreshSecret),
		ExpiresAt: now.Add(refreshTTLDefault),
		UserAgent: strptr(c.Get("User-Agent")),
		IP:        strptr(c.IP()),
	}
	if err := db.WithContext(c.Context()).Create(&rt).Error; err != nil {
		return nil, err
	}

	return &dto.TokenPairResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    now.Add(accessTTLDefault),
		User: dto.AuthUserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	}, nil
}

// ========================== REFRESH TOKEN ==========================
// POST /api/auth/refresh-token
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshRaw := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshRaw == "" {
		var body struct {
			RefreshToken string `json:"refresh_token"`
		}
		_ = c.BodyParser(&body)
		refreshRaw = strings.TrimSpace(body.RefreshToken)
	}
	if refreshRaw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token ausente")
	}

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	tok, err := jwt.Parse(refreshRaw, func(t *jwt.Token) (any, error) {
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token inválido")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token inválido")
	}

	// the presented hash must still exist in the DB
	h := computeRefreshHash(refreshRaw, refreshSecret)
	var exists bool
	if err := db.Raw(`SELECT EXISTS(SELECT 1 FROM refresh_tokens WHERE token = ?)`, h).Scan(&exists).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if !exists {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token desconhecido")
	}

	var user authModel.UserModel
	if err := db.WithContext(c.Context()).First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Usuário não encontrado")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Conta desativada")
	}

	// ROTATE: drop the old hash before issuing a new pair
	if err := db.WithContext(c.Context()).
		Where("token = ?", h).
		Delete(&authModel.RefreshTokenModel{}).Error; err != nil {
		log.Printf("[refresh] delete old hash failed: %v", err)
	}

	pair, err := issueTokenPair(db, c, user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao renovar tokens")
	}
	setRefreshCookie(c, pair.RefreshToken)
	return helper.JsonOK(c, "Tokens renovados", pair)
}

func setRefreshCookie(c *fiber.Ctx, refresh string) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/api/auth",
		Expires:  time.Now().Add(refreshTTLDefault),
	})
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
