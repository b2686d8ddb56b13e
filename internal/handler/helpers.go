package handler

import (
	"fmt"
	"strconv"

	"dcn-community/internal/domain"
	"dcn-community/internal/export"
	"dcn-community/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// parseAndValidate decodes the JSON body into req and runs struct validation.
func parseAndValidate(c *fiber.Ctx, v *validation.Validator, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return domain.NewError(domain.CodeInvalidInput, "Format data tidak valid", err)
	}
	if errs := v.Struct(req); errs != nil {
		return errs
	}
	return nil
}

// queryInt reads an integer query parameter, falling back to def when it is
// absent or malformed.
func queryInt(c *fiber.Ctx, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

func sendWorkbook(c *fiber.Ctx, b []byte, filename string) error {
	c.Set(fiber.HeaderContentType, export.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(b)
}
