package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/khanghh/authportal/internal/validation"
)

type validationResponse struct {
	Errors      map[validation.Field]string `json:"errors"`
	Submittable bool                        `json:"submittable"`
}

// sendValidationResult answers a live validation request with the failing
// fields and whether the form may be submitted.
func sendValidationResult(ctx *fiber.Ctx, result validation.Result) error {
	return ctx.JSON(validationResponse{
		Errors:      result.Errors(),
		Submittable: result.Submittable(),
	})
}

// parseForm binds an urlencoded, multipart or JSON body into form.
func parseForm(ctx *fiber.Ctx, form any) error {
	if err := ctx.BodyParser(form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}
