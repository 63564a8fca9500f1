package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/tshims/potea/core"
	"github.com/tshims/potea/core/admin"
	"github.com/tshims/potea/core/user"
)

type accountApi struct {
	conf     *core.Config
	validate *validator.Validate
	userSvc  *user.Service
	adminSvc *admin.Service
}

func registerAccountAPI(e *echo.Echo, deps ServerDeps) {
	api := accountApi{
		conf:     deps.Conf,
		validate: deps.Validate,
		userSvc:  deps.UserSvc,
		adminSvc: deps.AdminSvc,
	}

	e.POST("/register", api.register)
	e.POST("/login", api.login)
	e.POST("/admin-login", api.adminLogin)
}

type (
	LoginRequest struct {
		FullName string `json:"fullName" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	AdminLoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	UserLoginResponse struct {
		user.User
		Role  string `json:"role"`
		Token string `json:"token"`
	}

	AdminLoginResponse struct {
		admin.Admin
		Role  string `json:"role"`
		Token string `json:"token"`
	}
)

// Handlers

func (api *accountApi) register(ctx echo.Context) error {
	var data user.NewUser
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewUser")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	usr, err := api.userSvc.Register(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "registering user")
	}

	return ctx.JSON(http.StatusCreated, usr)
}

func (api *accountApi) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}

	usr, err := authenticateUser(ctx.Request().Context(), data.FullName, data.Password, api.userSvc)
	if err != nil {
		return err
	}
	token, err := GenerateToken(api.conf, GetUserClaims(api.conf, usr))
	if err != nil {
		return errors.Wrap(err, "generating token")
	}

	return ctx.JSON(http.StatusOK, UserLoginResponse{User: usr, Role: RoleUser, Token: token})
}

func (api *accountApi) adminLogin(ctx echo.Context) error {
	var data AdminLoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to AdminLoginRequest")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}

	adm, err := authenticateAdmin(ctx.Request().Context(), data.Username, data.Password, api.adminSvc)
	if err != nil {
		return err
	}
	token, err := GenerateToken(api.conf, GetAdminClaims(api.conf, adm))
	if err != nil {
		return errors.Wrap(err, "generating token")
	}

	return ctx.JSON(http.StatusOK, AdminLoginResponse{Admin: adm, Role: RoleAdmin, Token: token})
}
