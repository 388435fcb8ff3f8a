package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/stirwin/form-builder/app"
	"github.com/stirwin/form-builder/routes/middlewares"
)

func Wire(app app.App) http.Handler {
	root := chi.NewRouter()
	root.Use(middleware.Logger, middleware.Recoverer)

	root.Mount("/api", apiRouter(app))

	root.
		With(middlewares.CookieAuth(app.BearerServer), middlewares.Admin(app.TokenSecret)).
		Mount("/admin", servePrivateFiles("/admin"))
	root.Mount("/", servePublicFiles())

	return root
}

func apiRouter(app app.App) http.Handler {
	api := chi.NewRouter()

	// public fill-in flow, by share token
	api.Get("/f/{shareURL}", PublicGetForm(app))
	api.Post("/f/{shareURL}/submissions", PublicSubmitForm(app))

	api.Route("/admin", func(r chi.Router) {
		r.Use(middlewares.Admin(app.TokenSecret))

		r.Post("/forms", CreateForm(app))
		r.Get("/forms", ListForms(app))
		r.Get("/stats", GetDashboardStats(app))

		r.Route(`/forms/{id:^\d+$}`, func(r chi.Router) {
			r.Get("/", GetFormById(app))
			r.Put("/", UpdateFormDetails(app))
			r.Delete("/", DeleteForm(app))
			r.Put("/content", UpdateFormContent(app))
			r.Post("/publish", PublishForm(app))
			r.Post("/duplicate", DuplicateForm(app))
			r.Get("/stats", GetFormStats(app))

			r.Get("/submissions", GetFormSubmissions(app))
			r.Put(`/submissions/{submissionId:^\d+$}`, UpdateSubmission(app))
			r.Delete(`/submissions/{submissionId:^\d+$}`, DeleteSubmission(app))
		})
	})

	api.Post("/login", Login(app))
	api.Post("/refresh", Refresh(app))

	return api
}

func servePublicFiles() http.Handler {
	return http.FileServer(http.Dir("public"))
}

func servePrivateFiles(path string) http.Handler {
	return http.StripPrefix(path, http.FileServer(http.Dir("private")))
}
