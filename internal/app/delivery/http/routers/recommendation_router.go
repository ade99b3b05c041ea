package routers

import (
	"neuroshield-service/internal/app/delivery/http/middlewares"
	"neuroshield-service/internal/app/services/recommendations"

	"github.com/go-chi/chi/v5"
)

func attachPatientScopedRecommendationRoutes(router chi.Router, middlewares *middlewares.Middlewares, recommendationController *recommendations.RecommendationController) {
	router.With(middlewares.Authentication).Get("/{patientID}/recommendations", recommendationController.ListRecommendations)
	router.With(middlewares.Authentication).Post("/{patientID}/recommendations", recommendationController.CreateRecommendation)
	router.With(middlewares.Authentication).Post("/{patientID}/recommendations/system", recommendationController.GenerateBaseline)
}

func attachRecommendationRoutes(router chi.Router, middlewares *middlewares.Middlewares, recommendationController *recommendations.RecommendationController) {
	router.With(middlewares.Authentication).Delete("/{recommendationID}", recommendationController.Deactivate)
}
