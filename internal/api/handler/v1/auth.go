package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/baolive/camping-api/internal/api/handler/v1/request"
	"github.com/baolive/camping-api/internal/api/handler/v1/response"
	"github.com/baolive/camping-api/internal/config"
	"github.com/baolive/camping-api/internal/pkg/jwthelper"
	"github.com/baolive/camping-api/internal/service"
)

type AuthService interface {
	SignIn(password string) error
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleSignin godoc
// @Summary      Sign in as admin
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request   body      request.SigninRequest true "request body"
// @Success      200      {object}   response.SigninResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/signin [post]
func (h *AuthHandler) HandleSignin(ctx *gin.Context) {
	var req request.SigninRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.SignIn(req.Password); err != nil {
		if errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrWrongCredentials(err))
			return
		}

		err = fmt.Errorf("v1.HandleSignin -> h.svc.SignIn -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	token, err := jwthelper.GenerateAdminToken([]byte(h.conf.JWTSigningKey), ctx.Request.UserAgent())
	if err != nil {
		err = fmt.Errorf("v1.HandleSignin -> jwthelper.GenerateAdminToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.SigninResponse{
		Token: token,
	})
}

// HandleSession godoc
// @Summary      Check admin session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.SessionResponse
// @Failure      401  {object}  response.Err
// @Router       /auth/session [get]
// @Security     BearerAuth
func (h *AuthHandler) HandleSession(ctx *gin.Context) {
	// RequireAdmin has already vetted the token by the time we get here.
	ctx.JSON(http.StatusOK, response.SessionResponse{
		Authenticated: true,
	})
}
