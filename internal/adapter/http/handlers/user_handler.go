package handlers

import (
	"errors"
	"net/http"

	request "recibozap/internal/adapter/http/dto/request"
	response "recibozap/internal/adapter/http/dto/response"
	"recibozap/internal/domain/entities"
	"recibozap/internal/usecase"
	"recibozap/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSubscriptionPayload = pkg.NewDomainErrorSimple("INVALID_SUBSCRIPTION_INPUT", "Invalid subscription payload", http.StatusBadRequest)

// UserHandler exposes the quota/profile read API and the subscription update
// written by the billing integration.

type UserHandler struct {
	users usecase.IUserUseCase
}

func NewUserHandler(users usecase.IUserUseCase) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) GetStats(c *gin.Context) {
	stats, err := h.users.GetStats(c.Request.Context(), c.Param("phone"))
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUserStats(stats))
}

func (h *UserHandler) UpdateSubscription(c *gin.Context) {
	var payload request.UpdateSubscriptionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSubscriptionPayload.HTTPStatus, errInvalidSubscriptionPayload.ToHTTPError())
		return
	}

	user, err := h.users.UpdateSubscription(
		c.Request.Context(),
		c.Param("phone"),
		entities.PlanID(payload.Plan),
		entities.SubscriptionStatus(payload.Status),
	)
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUser(user))
}

func mapUserError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPhone), errors.Is(err, usecase.ErrInvalidPlan), errors.Is(err, usecase.ErrEmptyProfileField):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
