package auth

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

type AuthController struct {
	AuthUsecase    AuthUsecase
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewAuthController(authUsecase AuthUsecase, internalConfig *config.InternalConfig, logger *zap.Logger) *AuthController {
	return &AuthController{
		AuthUsecase:    authUsecase,
		InternalConfig: internalConfig,
		Log:            logger,
	}
}

func (ctrl *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	request := new(requests.Signup)
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

	response, token, err := ctrl.AuthUsecase.Signup(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	http.SetCookie(w, ctrl.sessionCookie(token))
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SignupSuccess, response)
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	request := new(requests.Login)
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

	response, token, err := ctrl.AuthUsecase.Login(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	http.SetCookie(w, ctrl.sessionCookie(token))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccess, response)
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	if cookie, err := r.Cookie(ctrl.InternalConfig.App.SessionCookieName); err == nil {
		if err := ctrl.AuthUsecase.Logout(ctx, cookie.Value); err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}
	}

	http.SetCookie(w, ctrl.clearedSessionCookie())
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccess, nil)
}

func (ctrl *AuthController) Dashboard(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrAccessDenied(errors.New("no principal on request")))
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	response, err := ctrl.AuthUsecase.Dashboard(ctx, principal)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DashboardSuccess, response)
}

func (ctrl *AuthController) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	timeout := time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
	return context.WithTimeout(r.Context(), timeout)
}

func (ctrl *AuthController) sessionCookie(token string) *http.Cookie {
	appConfig := ctrl.InternalConfig.App
	ttl := time.Duration(ctrl.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	crossSite := utils.CrossSiteOrigins(appConfig.FrontendOrigin, appConfig.BackendOrigin)
	return utils.BuildSessionCookie(appConfig.SessionCookieName, token, ttl, appConfig.Env == "production", crossSite)
}

func (ctrl *AuthController) clearedSessionCookie() *http.Cookie {
	appConfig := ctrl.InternalConfig.App
	crossSite := utils.CrossSiteOrigins(appConfig.FrontendOrigin, appConfig.BackendOrigin)
	return utils.ClearSessionCookie(appConfig.SessionCookieName, appConfig.Env == "production", crossSite)
}
