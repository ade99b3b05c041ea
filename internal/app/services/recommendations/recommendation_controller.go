package recommendations

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

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type RecommendationController struct {
	RecommendationUsecase RecommendationUsecase
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

func NewRecommendationController(recommendationUsecase RecommendationUsecase, internalConfig *config.InternalConfig, logger *zap.Logger) *RecommendationController {
	return &RecommendationController{
		RecommendationUsecase: recommendationUsecase,
		InternalConfig:        internalConfig,
		Log:                   logger,
	}
}

func (ctrl *RecommendationController) ListRecommendations(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrAccessDenied(errors.New("no principal on request")))
		return
	}

	patientID := chi.URLParam(r, "patientID")
	if patientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(errors.New("missing patientID url param"), "patientID"))
		return
	}

	recommendationType := r.URL.Query().Get("type")
	activeOnly := r.URL.Query().Get("active") == "true"

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	response, err := ctrl.RecommendationUsecase.ListRecommendations(ctx, principal, patientID, recommendationType, activeOnly)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RecommendationListSuccess, response)
}

func (ctrl *RecommendationController) CreateRecommendation(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrAccessDenied(errors.New("no principal on request")))
		return
	}

	patientID := chi.URLParam(r, "patientID")
	if patientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(errors.New("missing patientID url param"), "patientID"))
		return
	}

	request := new(requests.CreateRecommendation)
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

	response, err := ctrl.RecommendationUsecase.CreateRecommendation(ctx, principal, patientID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RecommendationCreatedSuccess, response)
}

func (ctrl *RecommendationController) GenerateBaseline(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrAccessDenied(errors.New("no principal on request")))
		return
	}

	patientID := chi.URLParam(r, "patientID")
	if patientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(errors.New("missing patientID url param"), "patientID"))
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	response, err := ctrl.RecommendationUsecase.GenerateBaseline(ctx, principal, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RecommendationCreatedSuccess, response)
}

func (ctrl *RecommendationController) Deactivate(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrAccessDenied(errors.New("no principal on request")))
		return
	}

	recommendationID := chi.URLParam(r, "recommendationID")
	if recommendationID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(errors.New("missing recommendationID url param"), "recommendationID"))
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	err := ctrl.RecommendationUsecase.Deactivate(ctx, principal, recommendationID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RecommendationDeactivatedSuccess, nil)
}

func (ctrl *RecommendationController) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	timeout := time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
	return context.WithTimeout(r.Context(), timeout)
}
