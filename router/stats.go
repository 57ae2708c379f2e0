package router

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cloudkitchen/cloudkitchen/model"
	"github.com/cloudkitchen/cloudkitchen/repository"
	"github.com/cloudkitchen/cloudkitchen/router/extension/herror"
)

// GetTodayStats GET /api/stats/today
//
// 管理ダッシュボードの初期表示用。以降の更新はlive-metricsで届く
func (h *Handlers) GetTodayStats(c echo.Context) error {
	today := model.DateKey(time.Now())

	stats, err := h.Repo.GetStats(today)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			stats = &model.Stats{Date: today}
		} else {
			return herror.InternalServerError(err)
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"date":               stats.Date,
		"dailyVisitors":      stats.DailyVisitors,
		"totalOrdersToday":   stats.TotalOrdersToday,
		"activeCustomers":    h.Presence.Count(),
		"totalVisitorsToday": stats.DailyVisitors,
	})
}
