package records

import (
	"context"
	"neuroshield-service/internal/app/models"
	"neuroshield-service/internal/pkg/dto/requests"
	"neuroshield-service/internal/pkg/dto/responses"
)

type RecordUsecase interface {
	ListRecords(ctx context.Context, principal *models.Principal, patientProfileID string) ([]responses.MedicalRecord, error)
	UploadRecord(ctx context.Context, principal *models.Principal, patientProfileID string, request *requests.UploadRecord) (*responses.MedicalRecord, error)
	UpdateRecord(ctx context.Context, principal *models.Principal, recordID string, request *requests.UpdateRecord) (*responses.MedicalRecord, error)
	DeleteRecord(ctx context.Context, principal *models.Principal, recordID string) error
	VerifyRecord(ctx context.Context, principal *models.Principal, recordID string, request *requests.VerifyRecord) (*responses.RecordVerification, error)
}
