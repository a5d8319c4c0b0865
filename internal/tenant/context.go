// Package tenant extracts the company and user identity of the
// current request from its JWT claims and provides the GORM scope
// that confines every query to one company's rows.
package tenant

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func claims(c *fiber.Ctx) (jwt.MapClaims, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return nil, errors.New("invalid token in context")
	}
	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return mc, nil
}

// GetCompanyID extracts the company UUID from JWT claims in context.
func GetCompanyID(c *fiber.Ctx) (uuid.UUID, error) {
	mc, err := claims(c)
	if err != nil {
		return uuid.Nil, err
	}
	id, ok := mc["company_id"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing company_id claim")
	}
	return uuid.Parse(id)
}

// GetUserID extracts the user UUID from JWT claims in context.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	mc, err := claims(c)
	if err != nil {
		return uuid.Nil, err
	}
	sub, ok := mc["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing sub claim")
	}
	return uuid.Parse(sub)
}

// GetRole extracts the role claim; empty when absent.
func GetRole(c *fiber.Ctx) string {
	mc, err := claims(c)
	if err != nil {
		return ""
	}
	role, _ := mc["role"].(string)
	return role
}

// GetUserName extracts the display name claim; empty when absent.
func GetUserName(c *fiber.Ctx) string {
	mc, err := claims(c)
	if err != nil {
		return ""
	}
	name, _ := mc["name"].(string)
	return name
}
