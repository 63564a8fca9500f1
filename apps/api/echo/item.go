package echoapi

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/tshims/potea/core"
	"github.com/tshims/potea/core/admin"
	"github.com/tshims/potea/core/item"
)

const errInvalidAdminID = "invalid admin id"

type itemApi struct {
	validate *validator.Validate
	foundSvc *item.FoundService
	lostSvc  *item.LostService
	adminSvc *admin.Service
}

func registerItemAPI(e *echo.Echo, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := itemApi{
		validate: deps.Validate,
		foundSvc: deps.FoundSvc,
		lostSvc:  deps.LostSvc,
		adminSvc: deps.AdminSvc,
	}

	// browsing endpoints are public
	e.GET("/found-items", api.listFoundItems)
	e.GET("/lost-items", api.listLostItems)
	e.GET("/admin-lost-items", api.listLostItemReports)
	e.GET("/my-lost-items", api.listMyLostItems)

	// mutations require a token matching the asserted owner
	e.POST("/found-items", api.createFoundItem, jwt, roleMiddleware(RoleAdmin))
	e.POST("/found-items/:id/claim", api.claimFoundItem, jwt, roleMiddleware(RoleAdmin))
	e.POST("/lost-items", api.createLostItem, jwt, roleMiddleware(RoleUser))
}

// Handlers

func (api *itemApi) createFoundItem(ctx echo.Context) error {
	var data item.NewFoundItem
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewFoundItem")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}
	callerID, err := claims.CallerID()
	if err != nil {
		return err
	}
	// the caller may only log items under their own admin id
	if callerID != data.CreatedByAdminID {
		return errHttpForbidden
	}

	if _, err = api.adminSvc.GetByID(ctx.Request().Context(), data.CreatedByAdminID); err != nil {
		if errors.Cause(err) == admin.ErrNotFound {
			return core.NewValidationError(
				errors.New(errInvalidAdminID),
				core.FieldError{Field: "createdByAdminId", Error: errInvalidAdminID},
			)
		}
		return errors.Wrap(err, "getting admin")
	}

	it, err := api.foundSvc.Report(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "reporting found item")
	}
	return ctx.JSON(http.StatusOK, it)
}

func (api *itemApi) listFoundItems(ctx echo.Context) error {
	items, err := api.foundSvc.ListUnclaimed(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "listing unclaimed found items")
	}
	if items == nil {
		items = []item.FoundItem{}
	}
	return ctx.JSON(http.StatusOK, items)
}

func (api *itemApi) claimFoundItem(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}

	it, err := api.foundSvc.GetByID(ctx.Request().Context(), id)
	if err != nil {
		if errors.Cause(err) == item.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "getting found item")
	}

	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}
	callerID, err := claims.CallerID()
	if err != nil {
		return err
	}
	// only the admin who logged the item may mark it claimed
	if callerID != it.CreatedByAdminID {
		return errHttpForbidden
	}

	it, err = api.foundSvc.Claim(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "claiming found item")
	}
	return ctx.JSON(http.StatusOK, it)
}

func (api *itemApi) createLostItem(ctx echo.Context) error {
	var data item.NewLostItem
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewLostItem")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}
	callerID, err := claims.CallerID()
	if err != nil {
		return err
	}
	// the caller may only report items under their own user id
	if callerID != data.UserID {
		return errHttpForbidden
	}

	it, err := api.lostSvc.Report(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "reporting lost item")
	}
	return ctx.JSON(http.StatusOK, it)
}

func (api *itemApi) listLostItems(ctx echo.Context) error {
	items, err := api.lostSvc.ListRecent(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "listing recent lost items")
	}
	if items == nil {
		items = []item.LostItem{}
	}
	return ctx.JSON(http.StatusOK, items)
}

func (api *itemApi) listLostItemReports(ctx echo.Context) error {
	reports, err := api.lostSvc.ListReports(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "listing lost item reports")
	}
	if reports == nil {
		reports = []item.LostItemReport{}
	}
	return ctx.JSON(http.StatusOK, reports)
}

func (api *itemApi) listMyLostItems(ctx echo.Context) error {
	param := ctx.QueryParam("userId")
	if param == "" {
		// no user, just return an empty list
		return ctx.JSON(http.StatusOK, []item.LostItem{})
	}
	userID, err := strconv.Atoi(param)
	if err != nil {
		return core.NewValidationError(
			errors.New("invalid user id"),
			core.FieldError{Field: "userId", Error: "invalid user id"},
		)
	}

	items, err := api.lostSvc.ListForUser(ctx.Request().Context(), userID)
	if err != nil {
		return errors.Wrap(err, "listing lost items for user")
	}
	if items == nil {
		items = []item.LostItem{}
	}
	return ctx.JSON(http.StatusOK, items)
}
