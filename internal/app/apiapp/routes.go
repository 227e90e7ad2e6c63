package apiapp

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	matchsvc "github.com/Brooklyn-808/friendr/internal/services/match"
	profilesvc "github.com/Brooklyn-808/friendr/internal/services/profiles"
	"github.com/Brooklyn-808/friendr/internal/transport/http/handlers"
)

type Dependencies struct {
	ProfileService *profilesvc.Service
	MatchService   *matchsvc.Service
	Logger         *zap.Logger
}

func RegisterRoutes(r chi.Router, deps Dependencies) {
	healthHandler := handlers.NewHealthHandler()
	profileHandler := handlers.NewProfileHandler(deps.ProfileService)
	swipeHandler := handlers.NewSwipeHandler(deps.MatchService)
	candidatesHandler := handlers.NewCandidatesHandler(deps.MatchService)
	matchesHandler := handlers.NewMatchesHandler(deps.MatchService)
	likesHandler := handlers.NewLikesHandler(deps.MatchService)
	notificationsHandler := handlers.NewNotificationsHandler(deps.MatchService)
	dmHandler := handlers.NewDMHandler(deps.MatchService)

	identityMW := IdentityMiddleware()

	r.Get("/healthz", healthHandler.Get)
	r.Post("/profiles", profileHandler.Create)
	r.Get("/profiles", profileHandler.List)
	r.Get("/profiles/{id}", profileHandler.Get)

	r.Group(func(r chi.Router) {
		r.Use(identityMW)
		r.Post("/profile", profileHandler.Update)
		r.Post("/swipe", swipeHandler.Handle)
		r.Post("/swipes/reset", swipeHandler.ResetSeen)
		r.Get("/candidates", candidatesHandler.List)
		r.Get("/matches", matchesHandler.List)
		r.Get("/likes", likesHandler.List)
		r.Get("/notifications", notificationsHandler.List)
		r.Post("/notifications/{id}/dismiss", notificationsHandler.Dismiss)
		r.Post("/dm", dmHandler.Send)
		r.Get("/dm/{peerID}", dmHandler.History)
	})
}
