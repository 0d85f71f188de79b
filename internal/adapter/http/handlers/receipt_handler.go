package handlers

import (
	"errors"
	"net/http"

	request "recibozap/internal/adapter/http/dto/request"
	response "recibozap/internal/adapter/http/dto/response"
	"recibozap/internal/domain/entities"
	"recibozap/internal/usecase"
	"recibozap/internal/usecase/interfaces"
	"recibozap/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidReceiptPayload = pkg.NewDomainErrorSimple("INVALID_RECEIPT_INPUT", "Invalid receipt payload", http.StatusBadRequest)
	errMissingPhoneQuery     = pkg.NewDomainErrorSimple("MISSING_PHONE", "Query parameter phone is required", http.StatusBadRequest)
)

// ReceiptHandler exposes the direct generation API plus receipt reads.

type ReceiptHandler struct {
	receipts usecase.IReceiptUseCase
	users    usecase.IUserUseCase
}

func NewReceiptHandler(receipts usecase.IReceiptUseCase, users usecase.IUserUseCase) *ReceiptHandler {
	return &ReceiptHandler{receipts: receipts, users: users}
}

// Generate runs the same orchestrator the bot uses. Quota exhaustion answers
// 403 with the current stats attached so API callers can surface the limits.
func (h *ReceiptHandler) Generate(c *gin.Context) {
	var payload request.GenerateReceiptRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReceiptPayload.HTTPStatus, errInvalidReceiptPayload.ToHTTPError())
		return
	}

	result, err := h.receipts.Generate(c.Request.Context(), payload.ResolvePhone(), payload.ToDraft(), entities.GeneratedViaAPI)
	if err != nil {
		if errors.Is(err, usecase.ErrQuotaExceeded) {
			h.quotaExceeded(c, payload.ResolvePhone())
			return
		}
		appErr := mapReceiptError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromGenerateResult(result))
}

func (h *ReceiptHandler) quotaExceeded(c *gin.Context, phone string) {
	body := gin.H{
		"code":    "QUOTA_EXCEEDED",
		"message": "Monthly receipt limit reached",
	}
	if stats, err := h.users.GetStats(c.Request.Context(), phone); err == nil {
		body["stats"] = response.FromUserStats(stats)
	}
	c.JSON(http.StatusForbidden, body)
}

// Download streams the stored PDF.
func (h *ReceiptHandler) Download(c *gin.Context) {
	pdf, filename, err := h.receipts.Download(c.Request.Context(), c.Param("receiptId"))
	if err != nil {
		appErr := mapReceiptError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// List returns a user's receipts newest-first.
func (h *ReceiptHandler) List(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		c.JSON(errMissingPhoneQuery.HTTPStatus, errMissingPhoneQuery.ToHTTPError())
		return
	}

	receipts, err := h.receipts.ListByUserPhone(c.Request.Context(), phone, 0)
	if err != nil {
		appErr := mapReceiptError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReceipts(receipts))
}

// Void flips a receipt to void. The PDF stays downloadable.
func (h *ReceiptHandler) Void(c *gin.Context) {
	receipt, err := h.receipts.Void(c.Request.Context(), c.Param("receiptId"))
	if err != nil {
		appErr := mapReceiptError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReceipt(receipt))
}

func mapReceiptError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrValidationFailed), errors.Is(err, usecase.ErrInvalidReceiptID), errors.Is(err, usecase.ErrInvalidPhone):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuotaExceeded):
		return pkg.NewDomainErrorSimple("QUOTA_EXCEEDED", "Monthly receipt limit reached", http.StatusForbidden)
	case errors.Is(err, usecase.ErrReceiptNotFound), errors.Is(err, interfaces.ErrReceiptFileNotFound):
		return pkg.NewDomainErrorSimple("RECEIPT_NOT_FOUND", "Receipt not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRenderFailed):
		return pkg.NewDomainError("RENDER_FAILED", "Failed to render receipt document", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
