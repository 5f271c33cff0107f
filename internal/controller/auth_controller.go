package controller

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"streamvault_backend/pkg/utils/jwt"
)

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// demo fallback when no ADMIN_PASSWORD_HASH is configured
const demoAdminPassword = "admin123"

// Login authenticates the console admin against the configured credentials.
func Login(c *fiber.Ctx) error {
	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if input.Email != Cfg.Admin.Email || !passwordMatches(input.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}

	token, err := jwt.GenerateToken(input.Email, "admin")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not generate token",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
	})
}

// GetMe returns the authenticated admin's claims.
func GetMe(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	return c.JSON(fiber.Map{
		"email": claims.Email,
		"role":  claims.Role,
	})
}

func passwordMatches(password string) bool {
	if Cfg.Admin.PasswordHash == "" {
		return password == demoAdminPassword
	}
	return bcrypt.CompareHashAndPassword([]byte(Cfg.Admin.PasswordHash), []byte(password)) == nil
}
