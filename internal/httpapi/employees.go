package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DuyPhong1504/duyphong-app/internal/service"
)

type updateEmployeeRequest struct {
	Fullname *string `json:"fullname"`
	Position *string `json:"position"`
	Salary   *int    `json:"salary"`
}

type transferDepartmentRequest struct {
	NewDepartmentID string `json:"newDepartmentId"`
}

func (h *Handler) handleGetEmployee(c *gin.Context) {
	employee, err := h.services.Employees.GetEmployee(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (h *Handler) handleGetEmployeeDetail(c *gin.Context) {
	detail, err := h.services.Employees.GetEmployeeDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *Handler) handleUpdateEmployee(c *gin.Context) {
	var req updateEmployeeRequest
	if err := decodeJSON(c.Request, &req); err != nil {
		h.badRequest(c, err)
		return
	}

	employee, err := h.services.Employees.UpdateEmployee(c.Request.Context(), c.Param("id"), service.UpdateEmployeeInput{
		Fullname: req.Fullname,
		Position: req.Position,
		Salary:   req.Salary,
	})
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, employee)
}

func (h *Handler) handleTransferDepartment(c *gin.Context) {
	var req transferDepartmentRequest
	if err := decodeJSON(c.Request, &req); err != nil {
		h.badRequest(c, err)
		return
	}

	result, err := h.services.Employees.TransferDepartment(c.Request.Context(), c.Param("id"), service.TransferDepartmentInput{
		NewDepartmentID: req.NewDepartmentID,
	})
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) handleDepartmentHistory(c *gin.Context) {
	history, err := h.services.Employees.DepartmentHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}
