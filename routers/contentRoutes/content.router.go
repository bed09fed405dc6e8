package contentRoutes

import (
	contentControllers "codelearn/controllers/content"
	"codelearn/middleware"
	contentValidators "codelearn/validators/content"

	"github.com/gofiber/fiber/v2"
)

func SetupContentRoutes(app *fiber.App) {
	contentGroup := app.Group("/api/content")

	// Catalog reads are public; the optional token lets admins widen
	// the status filter. /search must register before /:id.
	contentGroup.Get("/search", middleware.OptionalJWTMiddleware, contentControllers.SearchContent)
	contentGroup.Get("/language/:language", middleware.OptionalJWTMiddleware, contentControllers.GetContentByLanguage)
	contentGroup.Get("/:id", contentControllers.GetContentByID)

	// Authoring
	contentGroup.Post("/", middleware.JWTMiddleware, middleware.RequireCapability(middleware.CapCreateContent), contentValidators.CreateContent(), contentControllers.CreateContent)
	contentGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireCapability(middleware.CapUpdateContent), contentValidators.UpdateContent(), contentControllers.UpdateContent)
	contentGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireCapability(middleware.CapDeleteContent), contentControllers.DeleteContent)

	// Reviews
	contentGroup.Post("/:id/reviews", middleware.JWTMiddleware, middleware.RequireCapability(middleware.CapReviewContent), contentValidators.AddReview(), contentControllers.AddReview)
}
