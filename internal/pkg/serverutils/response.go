package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// SuccessResponse is the uniform envelope for 2xx responses.
func SuccessResponse(message string, data interface{}) fiber.Map {
	return fiber.Map{
		"success": true,
		"code":    fiber.StatusOK,
		"message": message,
		"data":    data,
	}
}

// ValidateRequest runs struct tag validation and folds violations into a
// single 400 error.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var violations []string
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, v := range verrs {
			violations = append(violations, fmt.Sprintf("%s failed on %s", v.Field(), v.Tag()))
		}
		return fiber.NewError(fiber.StatusBadRequest, strings.Join(violations, "; "))
	}
	return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
}
