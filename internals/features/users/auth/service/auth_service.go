// internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"acampamentos_backend/internals/configs"
	dto "acampamentos_backend/internals/features/users/auth/dto"
	authModel "acampamentos_backend/internals/features/users/auth/model"
	helper "acampamentos_backend/internals/helpers"
)

var validate = validator.New()

// ========================== REGISTER ==========================
// POST /api/auth/register
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, fieldErrors(err))
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao processar a senha")
	}

	user := authModel.UserModel{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		IsActive: true,
	}
	if err := db.WithContext(c.Context()).Create(&user).Error; err != nil {
		if helper.IsUniqueViolation(err, "") {
			return helper.JsonError(c, fiber.StatusConflict, "E-mail já cadastrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	pair, err := issueTokenPair(db, c, user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Usuário criado, mas falhou a emissão do token")
	}
	setRefreshCookie(c, pair.RefreshToken)
	return helper.JsonCreated(c, "Cadastro realizado", pair)
}

// ========================== LOGIN ==========================
// POST /api/auth/login
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, fieldErrors(err))
	}

	var user authModel.UserModel
	if err := db.WithContext(c.Context()).First(&user, "email = ?", req.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "E-mail ou senha incorretos")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Conta desativada")
	}
	if !CheckPassword(user.Password, req.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "E-mail ou senha incorretos")
	}

	pair, err := issueTokenPair(db, c, user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao emitir tokens")
	}
	setRefreshCookie(c, pair.RefreshToken)
	return helper.JsonOK(c, "Login realizado", pair)
}

// ========================== LOGIN GOOGLE ==========================
// POST /api/auth/login-google
func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var req dto.LoginGoogleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, fieldErrors(err))
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token Google inválido")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token Google inválido")
	}

	email := strings.ToLower(strings.TrimSpace(claimSet.Email))
	googleID := claimSet.Sub

	var user authModel.UserModel
	err = db.WithContext(c.Context()).
		Where("google_id = ? OR email = ?", googleID, email).
		First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = authModel.UserModel{
			Name:     claimSet.Name,
			Email:    email,
			Password: "-", // google-only account, never matches bcrypt
			GoogleID: &googleID,
			IsActive: true,
		}
		if err := db.WithContext(c.Context()).Create(&user).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	default:
		if user.GoogleID == nil {
			_ = db.WithContext(c.Context()).Model(&user).Update("google_id", googleID).Error
		}
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Conta desativada")
	}

	pair, err := issueTokenPair(db, c, user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao emitir tokens")
	}
	setRefreshCookie(c, pair.RefreshToken)
	return helper.JsonOK(c, "Login realizado", pair)
}

// ========================== LOGOUT ==========================
// POST /api/auth/logout revokes the presented refresh token.
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	refreshRaw := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshRaw != "" {
		if secret, err := getRefreshSecret(); err == nil {
			h := computeRefreshHash(refreshRaw, secret)
			_ = db.WithContext(c.Context()).
				Where("token = ?", h).
				Delete(&authModel.RefreshTokenModel{}).Error
		}
	}
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    "",
		HTTPOnly: true,
		MaxAge:   -1,
		Path:     "/api/auth",
	})
	return helper.JsonOK(c, "Logout realizado", nil)
}

func fieldErrors(err error) map[string][]string {
	out := map[string][]string{}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			out[fe.Field()] = append(out[fe.Field()], fe.Tag())
		}
	}
	return out
}
