package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/GregMSThompson/pettravel-backend/internal/handlers"
	"github.com/GregMSThompson/pettravel-backend/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(middleware.NewLoggerMiddleware(deps.Log).LoggerMiddleware)

	ush := handlers.NewUserHandlers(deps)
	tvh := handlers.NewTravelHandlers(deps)
	pth := handlers.NewPetHandlers(deps)
	plh := handlers.NewPlanHandlers(deps)
	qh := handlers.NewQueryHandlers(deps)

	// Public reference catalogue
	r.Mount("/countries", tvh.CountryRoutes())
	r.Mount("/pet-types", tvh.PetTypeRoutes())
	r.Mount("/requirements", tvh.RequirementRoutes())

	// Assistant queries: sessions are anonymous, no auth required
	r.Mount("/queries", qh.QueryRoutes())

	// Authenticated user resources
	auth := middleware.NewMiddleware(deps.Firebase)
	r.Group(func(r chi.Router) {
		r.Use(auth.FirebaseAuth)
		r.Mount("/users", ush.UserRoutes())
		r.Mount("/pets", pth.PetRoutes())
		r.Mount("/travel-plans", plh.PlanRoutes())
	})

	return r
}
