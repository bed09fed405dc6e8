package userValidator

import (
	"codelearn/middleware"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

// UpdateProfile validator middleware
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Username string `json:"username"`
			Email    string `json:"email"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Username != "" && len(strings.TrimSpace(reqData.Username)) < 3 {
			errors["username"] = "Username must be at least 3 characters long!"
		}
		if reqData.Email != "" && !isValidEmail(reqData.Email) {
			errors["email"] = "Invalid email!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}

// UpdateProgress validator middleware. Only a language and topic id are
// accepted; a percentage submitted directly is ignored because progress
// is always derived server-side.
func UpdateProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Language string `json:"language"`
			TopicID  string `json:"topicId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Language) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"language": "Language is required!",
			})
		}

		// A blank topic id is an invalid argument, not a malformed
		// payload, and maps to 400 like an out-of-range rating
		if strings.TrimSpace(reqData.TopicID) == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Topic ID must not be empty!", nil)
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}
