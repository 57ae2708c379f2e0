package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cloudkitchen/cloudkitchen/router/extension/herror"
)

// GetKitchenStatus GET /api/kitchen/status
func (h *Handlers) GetKitchenStatus(c echo.Context) error {
	status, err := h.Repo.GetKitchenStatus()
	if err != nil {
		return herror.InternalServerError(err)
	}
	return c.JSON(http.StatusOK, status)
}

// PutKitchenStatusRequest PUT /api/kitchen/status リクエストボディ
type PutKitchenStatusRequest struct {
	IsOpen    bool   `json:"isOpen"`
	UpdatedBy string `json:"updatedBy"`
}

// PutKitchenStatus PUT /api/kitchen/status
func (h *Handlers) PutKitchenStatus(c echo.Context) error {
	var req PutKitchenStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	status, err := h.Repo.SetKitchenStatus(req.IsOpen, req.UpdatedBy)
	if err != nil {
		return herror.InternalServerError(err)
	}
	return c.JSON(http.StatusOK, status)
}
