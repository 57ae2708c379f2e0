package router

import (
	"errors"
	"net/http"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/labstack/echo/v4"

	"github.com/cloudkitchen/cloudkitchen/model"
	"github.com/cloudkitchen/cloudkitchen/repository"
	"github.com/cloudkitchen/cloudkitchen/router/extension/herror"
)

// GetOrders GET /api/orders
func (h *Handlers) GetOrders(c echo.Context) error {
	orders, err := h.Repo.GetOrders()
	if err != nil {
		return herror.InternalServerError(err)
	}
	return c.JSON(http.StatusOK, orders)
}

// GetUserOrders GET /api/orders/user/:userID
func (h *Handlers) GetUserOrders(c echo.Context) error {
	orders, err := h.Repo.GetOrdersByUserID(c.Param("userID"))
	if err != nil {
		return herror.InternalServerError(err)
	}
	return c.JSON(http.StatusOK, orders)
}

// GetOrder GET /api/orders/:orderID
func (h *Handlers) GetOrder(c echo.Context) error {
	id, err := getParamAsUUID(c, "orderID")
	if err != nil {
		return err
	}

	order, err := h.Repo.GetOrder(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return herror.NotFound("order not found")
		}
		return herror.InternalServerError(err)
	}
	return c.JSON(http.StatusOK, order)
}

// PostOrderRequest POST /api/orders リクエストボディ
type PostOrderRequest struct {
	UserID   string           `json:"userId"`
	Items    model.OrderItems `json:"items"`
	Total    float64          `json:"total"`
	Address  model.JSON       `json:"address"`
	Location model.Location   `json:"location"`
}

func (r PostOrderRequest) Validate() error {
	return vd.ValidateStruct(&r,
		vd.Field(&r.UserID, vd.Required, vd.RuneLength(1, 64)),
		vd.Field(&r.Items, vd.Required, vd.Length(1, 0)),
		vd.Field(&r.Total, vd.Min(0.0)),
	)
}

// CreateOrder POST /api/orders
func (h *Handlers) CreateOrder(c echo.Context) error {
	var req PostOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.Repo.CreateOrder(repository.CreateOrderArgs{
		UserID:   req.UserID,
		Items:    req.Items,
		Total:    req.Total,
		Address:  req.Address,
		Location: req.Location,
	})
	if err != nil {
		if repository.IsArgError(err) {
			return herror.BadRequest(err)
		}
		return herror.InternalServerError(err)
	}
	return c.JSON(http.StatusCreated, order)
}

// PatchOrderStatusRequest PATCH /api/orders/:orderID/status リクエストボディ
type PatchOrderStatusRequest struct {
	Status model.OrderStatus `json:"status"`
}

func (r PatchOrderStatusRequest) Validate() error {
	return vd.ValidateStruct(&r,
		vd.Field(&r.Status, vd.Required, vd.By(func(v interface{}) error {
			if s, ok := v.(model.OrderStatus); ok && !s.Valid() {
				return errors.New("unknown order status")
			}
			return nil
		})),
	)
}

// UpdateOrderStatus PATCH /api/orders/:orderID/status
func (h *Handlers) UpdateOrderStatus(c echo.Context) error {
	id, err := getParamAsUUID(c, "orderID")
	if err != nil {
		return err
	}

	var req PatchOrderStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.Repo.UpdateOrderStatus(id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return herror.NotFound("order not found")
		case repository.IsArgError(err):
			return herror.BadRequest(err)
		default:
			return herror.InternalServerError(err)
		}
	}
	return c.JSON(http.StatusOK, order)
}

// DeleteOrder DELETE /api/orders/:orderID
func (h *Handlers) DeleteOrder(c echo.Context) error {
	id, err := getParamAsUUID(c, "orderID")
	if err != nil {
		return err
	}

	if err := h.Repo.DeleteOrder(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return herror.NotFound("order not found")
		}
		return herror.InternalServerError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Order deleted successfully"})
}
