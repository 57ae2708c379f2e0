package router

import (
	"errors"
	"net/http"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/guregu/null"
	"github.com/labstack/echo/v4"
	"github.com/samber/lo"

	"github.com/cloudkitchen/cloudkitchen/repository"
	"github.com/cloudkitchen/cloudkitchen/router/extension/herror"
)

// defaultFoodImageURL 画像未指定時のプレースホルダ
const defaultFoodImageURL = "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?auto=format&fit=crop&w=800&q=80"

// GetFoods GET /api/food
func (h *Handlers) GetFoods(c echo.Context) error {
	category := c.QueryParam("category")
	if category == "All Items" {
		category = ""
	}

	foods, err := h.Repo.GetFoods(category)
	if err != nil {
		return herror.InternalServerError(err)
	}
	return c.JSON(http.StatusOK, foods)
}

// GetFood GET /api/food/:foodID
func (h *Handlers) GetFood(c echo.Context) error {
	id, err := getParamAsUUID(c, "foodID")
	if err != nil {
		return err
	}

	food, err := h.Repo.GetFood(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return herror.NotFound("food item not found")
		}
		return herror.InternalServerError(err)
	}
	return c.JSON(http.StatusOK, food)
}

// PostFoodRequest POST /api/food リクエストボディ
type PostFoodRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`
	Available   bool    `json:"available"`
}

func (r PostFoodRequest) Validate() error {
	return vd.ValidateStruct(&r,
		vd.Field(&r.Name, vd.Required, vd.RuneLength(1, 100)),
		vd.Field(&r.Price, vd.Min(0.0)),
	)
}

// CreateFood POST /api/food
func (h *Handlers) CreateFood(c echo.Context) error {
	req := PostFoodRequest{Available: true}
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	food, err := h.Repo.CreateFood(repository.CreateFoodArgs{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Category:    req.Category,
		ImageURL:    lo.Ternary(len(req.ImageURL) > 0, req.ImageURL, defaultFoodImageURL),
		Available:   req.Available,
	})
	if err != nil {
		if repository.IsArgError(err) {
			return herror.BadRequest(err)
		}
		return herror.InternalServerError(err)
	}
	return c.JSON(http.StatusCreated, food)
}

// PutFoodRequest PUT /api/food/:foodID リクエストボディ
type PutFoodRequest struct {
	Name        null.String `json:"name"`
	Price       null.Float  `json:"price"`
	Description null.String `json:"description"`
	Category    null.String `json:"category"`
	ImageURL    null.String `json:"imageUrl"`
	Available   null.Bool   `json:"available"`
}

func (r PutFoodRequest) Validate() error {
	return vd.ValidateStruct(&r,
		vd.Field(&r.Name, vd.RuneLength(1, 100)),
		vd.Field(&r.Price, vd.Min(0.0)),
	)
}

// UpdateFood PUT /api/food/:foodID
func (h *Handlers) UpdateFood(c echo.Context) error {
	id, err := getParamAsUUID(c, "foodID")
	if err != nil {
		return err
	}

	var req PutFoodRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	food, err := h.Repo.UpdateFood(id, repository.UpdateFoodArgs{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Available:   req.Available,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return herror.NotFound("food item not found")
		case repository.IsArgError(err):
			return herror.BadRequest(err)
		default:
			return herror.InternalServerError(err)
		}
	}
	return c.JSON(http.StatusOK, food)
}

// DeleteFood DELETE /api/food/:foodID
func (h *Handlers) DeleteFood(c echo.Context) error {
	id, err := getParamAsUUID(c, "foodID")
	if err != nil {
		return err
	}

	if err := h.Repo.DeleteFood(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return herror.NotFound("food item not found")
		}
		return herror.InternalServerError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Food item deleted successfully"})
}
