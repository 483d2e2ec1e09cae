package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clearwell/clearwell-backend/api/controllers"
	"github.com/clearwell/clearwell-backend/api/middleware"
	"github.com/clearwell/clearwell-backend/internal/auth"
	"github.com/clearwell/clearwell-backend/internal/catalog"
	"github.com/clearwell/clearwell-backend/internal/favorites"
	"github.com/clearwell/clearwell-backend/internal/ingredients"
	"github.com/clearwell/clearwell-backend/internal/scores"
	"github.com/clearwell/clearwell-backend/internal/users"
	"github.com/clearwell/clearwell-backend/pkg/auth/session"
	"github.com/clearwell/clearwell-backend/pkg/config"
	"github.com/clearwell/clearwell-backend/pkg/db"
	"github.com/clearwell/clearwell-backend/pkg/logger"
	"github.com/clearwell/clearwell-backend/pkg/redis"
)

// Services groups the wired business services the router mounts.
type Services struct {
	Auth        auth.Service
	Favorites   favorites.Service
	Scores      scores.Service
	Catalog     catalog.Service
	Ingredients ingredients.Service
	Users       users.Service
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	sessions session.AccessSessionChecker,
	svcs Services,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisClient))
	})

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, redisClient, logg)).Post("/login", controllers.AuthLogin(svcs.Auth, logg))
		r.With(middleware.AuthRateLimit(registerPolicy, redisClient, logg)).Post("/register", controllers.AuthRegister(svcs.Auth, logg))
		r.Post("/logout", controllers.AuthLogout(svcs.Auth, cfg.JWT, logg))
		r.Post("/refresh", controllers.AuthRefresh(svcs.Auth, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		// catalog reads stay public so the app can browse before signup
		r.Get("/products/random", controllers.ProductsRandom(svcs.Catalog, logg))
		r.Get("/products/{type}/{id}", controllers.ProductDetail(svcs.Catalog, logg))
		r.Post("/products/{type}/{id}/impressions", controllers.ProductImpression(svcs.Catalog, logg))
		r.Get("/locations/random", controllers.LocationsRandom(svcs.Catalog, logg))
		r.Get("/locations/{id}", controllers.LocationDetail(svcs.Catalog, logg))
		r.Get("/ingredients/{id}", controllers.IngredientDetail(svcs.Ingredients, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, sessions, logg))

			r.Get("/ping", controllers.PrivatePing())
			r.Route("/favorites", func(r chi.Router) {
				r.Get("/", controllers.FavoritesList(svcs.Favorites, logg))
				r.Get("/ids", controllers.FavoriteIDs(svcs.Favorites, logg))
				r.Post("/", controllers.FavoriteAdd(svcs.Favorites, logg))
				r.Delete("/{itemId}", controllers.FavoriteRemove(svcs.Favorites, logg))
			})
			r.Get("/scores", controllers.ScoreSummary(svcs.Scores, logg))
			r.Route("/users/me", func(r chi.Router) {
				r.Get("/", controllers.UserProfile(svcs.Users, logg))
				r.Put("/tap-location", controllers.UserSetTapLocation(svcs.Users, logg))
			})
		})
	})

	return r
}
