package routers

import (
	"neuroshield-service/internal/app/delivery/http/middlewares"
	"neuroshield-service/internal/app/services/records"

	"github.com/go-chi/chi/v5"
)

func attachPatientScopedRecordRoutes(router chi.Router, middlewares *middlewares.Middlewares, recordController *records.RecordController) {
	router.With(middlewares.Authentication).Get("/{patientID}/records", recordController.ListRecords)
	router.With(middlewares.Authentication).Post("/{patientID}/records", recordController.UploadRecord)
}

func attachRecordRoutes(router chi.Router, middlewares *middlewares.Middlewares, recordController *records.RecordController) {
	router.With(middlewares.Authentication).Put("/{recordID}", recordController.UpdateRecord)
	router.With(middlewares.Authentication).Delete("/{recordID}", recordController.DeleteRecord)
	router.With(middlewares.Authentication).Post("/{recordID}/verify", recordController.VerifyRecord)
}
