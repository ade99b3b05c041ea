package doctors

import (
	"context"
	"errors"
	"net/http"
	"neuroshield-service/internal/app/config"
	"neuroshield-service/internal/pkg/constvars"
	"neuroshield-service/internal/pkg/dto/requests"
	"neuroshield-service/internal/pkg/exceptions"
	"neuroshield-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type DoctorController struct {
	DoctorUsecase  DoctorUsecase
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewDoctorController(doctorUsecase DoctorUsecase, internalConfig *config.InternalConfig, logger *zap.Logger) *DoctorController {
	return &DoctorController{
		DoctorUsecase:  doctorUsecase,
		InternalConfig: internalConfig,
		Log:            logger,
	}
}

func (ctrl *DoctorController) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrAccessDenied(errors.New("no principal on request")))
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	response, err := ctrl.DoctorUsecase.GetMyProfile(ctx, principal)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileGetSuccess, response)
}

func (ctrl *DoctorController) UpdateMyProfile(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrAccessDenied(errors.New("no principal on request")))
		return
	}

	request := new(requests.UpdateDoctorProfile)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	response, err := ctrl.DoctorUsecase.UpdateMyProfile(ctx, principal, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileUpdateSuccess, response)
}

func (ctrl *DoctorController) ListMyPatients(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrAccessDenied(errors.New("no principal on request")))
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	response, err := ctrl.DoctorUsecase.ListMyPatients(ctx, principal)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientListSuccess, response)
}

func (ctrl *DoctorController) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	timeout := time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
	return context.WithTimeout(r.Context(), timeout)
}
