package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DuyPhong1504/duyphong-app/internal/service"
)

type lunchLogRequest struct {
	EmployeeID string  `json:"employeeId"`
	LunchDate  string  `json:"lunchDate"`
	MealType   string  `json:"mealType"`
	Restaurant *string `json:"restaurant"`
	Notes      *string `json:"notes"`
}

type bulkLunchLogRequest struct {
	LunchLogs []lunchLogRequest `json:"lunchLogs"`
}

func (h *Handler) handleCreateLunchLogs(c *gin.Context) {
	var req bulkLunchLogRequest
	if err := decodeJSON(c.Request, &req); err != nil {
		h.badRequest(c, err)
		return
	}

	input := service.BulkCreateLunchLogInput{
		LunchLogs: make([]service.CreateLunchLogInput, 0, len(req.LunchLogs)),
	}
	for _, entry := range req.LunchLogs {
		input.LunchLogs = append(input.LunchLogs, service.CreateLunchLogInput{
			EmployeeID: entry.EmployeeID,
			LunchDate:  entry.LunchDate,
			MealType:   entry.MealType,
			Restaurant: entry.Restaurant,
			Notes:      entry.Notes,
		})
	}

	result, err := h.services.LunchLogs.CreateLunchLogs(c.Request.Context(), input)
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}
