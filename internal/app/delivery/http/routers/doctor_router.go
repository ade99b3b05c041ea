package routers

import (
	"neuroshield-service/internal/app/delivery/http/middlewares"
	"neuroshield-service/internal/app/services/doctors"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *doctors.DoctorController) {
	router.With(middlewares.Authentication).Get("/me", doctorController.GetMyProfile)
	router.With(middlewares.Authentication).Put("/me", doctorController.UpdateMyProfile)
	router.With(middlewares.Authentication).Get("/me/patients", doctorController.ListMyPatients)
}
