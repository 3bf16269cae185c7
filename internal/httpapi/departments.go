package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DuyPhong1504/duyphong-app/internal/service"
)

type createDepartmentRequest struct {
	Name string `json:"name"`
}

func (h *Handler) handleListDepartments(c *gin.Context) {
	departments, err := h.services.Departments.ListDepartments(c.Request.Context())
	if err != nil {
		h.respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, departments)
}

func (h *Handler) handleCreateDepartment(c *gin.Context) {
	var req createDepartmentRequest
	if err := decodeJSON(c.Request, &req); err != nil {
		h.badRequest(c, err)
		return
	}

	department, err := h.services.Departments.CreateDepartment(c.Request.Context(), service.CreateDepartmentInput{
		Name: req.Name,
	})
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, department)
}

func (h *Handler) handleAverageSalaries(c *gin.Context) {
	rows, err := h.services.Departments.AverageSalaries(c.Request.Context())
	if err != nil {
		h.respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) handleDepartmentStatistics(c *gin.Context) {
	stats, err := h.services.Departments.GetStatistics(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
