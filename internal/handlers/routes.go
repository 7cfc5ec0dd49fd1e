package handlers

import "github.com/gofiber/fiber/v2"

// SetupRoutes mounts the login, signup and home pages on router.
func SetupRoutes(router fiber.Router, submitter FormSubmitter, storage ClientStorage) {
	loginHandler := NewLoginHandler(submitter, storage)
	signupHandler := NewSignupHandler(submitter, storage)
	homeHandler := NewHomeHandler(storage)

	router.Get("/", homeHandler.GetHome)
	router.Get("/login", loginHandler.GetLogin)
	router.Post("/login", loginHandler.PostLogin)
	router.Post("/login/validate", loginHandler.PostValidate)
	router.Post("/logout", loginHandler.PostLogout)
	router.Get("/signup", signupHandler.GetSignup)
	router.Post("/signup", signupHandler.PostSignup)
	router.Post("/signup/validate", signupHandler.PostValidate)
}
