package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/teamup-app/league-backend/handlers"
	"github.com/teamup-app/league-backend/middleware"
)

// SetupRoutes wires every endpoint. Registration and login are public;
// everything else requires a valid bearer token. Role checks happen in the
// service layer against the freshly resolved caller row.
func SetupRoutes(
	router *chi.Mux,
	jwtSecret string,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	teamHandler *handlers.TeamHandler,
	leagueHandler *handlers.LeagueHandler,
	sportHandler *handlers.SportHandler,
	liveHandler *handlers.LiveHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authenticate := middleware.Authenticate([]byte(jwtSecret))

	router.Route("/users", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)

			r.Get("/captains", userHandler.ListCaptains)
			r.Get("/freeagents", userHandler.ListFreeAgents)
			r.Get("/{userID}", userHandler.GetByID)
			r.Put("/{userID}", userHandler.Update)
			r.Patch("/{userID}", userHandler.Update)
			r.Delete("/{userID}", userHandler.Delete)
			r.Post("/{userID}/avatar", userHandler.UploadAvatar)
		})
	})

	router.Route("/teams", func(r chi.Router) {
		r.Use(authenticate)

		r.Post("/", teamHandler.Create)
		r.Get("/", teamHandler.GetAll)
		r.Get("/{teamID}", teamHandler.GetByID)
		r.Get("/{teamID}/members", teamHandler.Members)
		r.Put("/{teamID}", teamHandler.Update)
		r.Patch("/{teamID}", teamHandler.Update)
		r.Delete("/{teamID}", teamHandler.Delete)
		r.Post("/{teamID}/logo", teamHandler.UploadLogo)
	})

	router.Route("/leagues", func(r chi.Router) {
		r.Use(authenticate)

		r.Post("/", leagueHandler.Create)
		r.Get("/", leagueHandler.GetAll)
		r.Get("/{leagueID}", leagueHandler.GetByID)
		r.Get("/{leagueID}/standings", leagueHandler.Standings)
		r.Get("/{leagueID}/live", liveHandler.ServeLeagueFeed)
		r.Put("/{leagueID}", leagueHandler.Update)
		r.Patch("/{leagueID}", leagueHandler.Update)
		r.Delete("/{leagueID}", leagueHandler.Delete)
	})

	router.Route("/sports", func(r chi.Router) {
		r.Use(authenticate)

		r.Post("/", sportHandler.Create)
		r.Get("/", sportHandler.GetAll)
		r.Get("/{sportID}", sportHandler.GetByID)
		r.Put("/{sportID}", sportHandler.Update)
		r.Patch("/{sportID}", sportHandler.Update)
		r.Delete("/{sportID}", sportHandler.Delete)
	})
}
