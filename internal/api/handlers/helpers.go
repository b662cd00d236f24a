package handlers

import (
	"SaveBite/domain"
	"SaveBite/internal/middleware"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func authContext(c *fiber.Ctx) (domain.AuthContext, error) {
	auth, ok := middleware.AuthFrom(c)
	if !ok {
		return domain.AuthContext{}, domain.ErrTokenNotFound
	}
	return auth, nil
}

func paramID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, domain.ErrParseID
	}
	return uint(id), nil
}
