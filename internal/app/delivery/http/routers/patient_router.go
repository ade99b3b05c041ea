package routers

import (
	"neuroshield-service/internal/app/delivery/http/middlewares"
	"neuroshield-service/internal/app/services/patients"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *patients.PatientController) {
	router.With(middlewares.Authentication).Get("/me", patientController.GetMyProfile)
	router.With(middlewares.Authentication).Put("/me", patientController.UpdateMyProfile)
	router.With(middlewares.Authentication).Get("/me/doctors", patientController.ListMyDoctors)
	router.With(middlewares.Authentication).Post("/me/doctors", patientController.AddDoctor)
	router.With(middlewares.Authentication).Delete("/me/doctors/{doctorID}", patientController.RemoveDoctor)
	router.With(middlewares.Authentication).Get("/{patientID}", patientController.GetPatient)
}
