package handler

import (
	"net/http"
	"time"

	"github.com/cedricmorin1/Ordermanagement/internal/apierror"
	"github.com/cedricmorin1/Ordermanagement/internal/dto"
	"github.com/cedricmorin1/Ordermanagement/internal/schedule"

	"github.com/gin-gonic/gin"
)

// PlanningHandler exposes the week/date resolver. It is stateless: the
// clock is injected so tests can pin "today".
type PlanningHandler struct {
	now func() time.Time
}

func NewPlanningHandler(now func() time.Time) *PlanningHandler {
	if now == nil {
		now = time.Now
	}
	return &PlanningHandler{now: now}
}

// Weeks GET /api/weeks — current week plus the next two.
func (h *PlanningHandler) Weeks(c *gin.Context) {
	weeks := schedule.NextWeeks(h.now(), 3)
	resp := make([]dto.WeekInfoResponse, 0, len(weeks))
	for _, w := range weeks {
		resp = append(resp, dto.WeekInfoResponse{
			WeekNumber: w.WeekNumber,
			StartDate:  w.StartDate.Format(schedule.DateLayout),
			EndDate:    w.EndDate.Format(schedule.DateLayout),
			Label:      w.Label,
		})
	}
	c.JSON(http.StatusOK, resp)
}

// DeliveryDate GET /api/weeks/delivery-date?week_start=&day=
func (h *PlanningHandler) DeliveryDate(c *gin.Context) {
	var query dto.DeliveryDateQuery
	if !bindQueryAndValidate(c, &query) {
		return
	}
	weekStart, err := time.Parse(schedule.DateLayout, query.WeekStart)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Date invalide"))
		return
	}
	date, err := schedule.DeliveryDateForDay(weekStart, query.Day)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, dto.DeliveryDateResponse{
		DeliveryDate: date.Format(schedule.DateLayout),
		DeliveryDay:  schedule.DayForDate(date),
	})
}
