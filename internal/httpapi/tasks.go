package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DuyPhong1504/duyphong-app/internal/service"
)

// createTaskRequest accepts a status so clients may send one; it is ignored.
type createTaskRequest struct {
	EmployeeID  string  `json:"employeeId"`
	TaskName    string  `json:"taskName"`
	Description string  `json:"description"`
	DueDate     string  `json:"dueDate"`
	Status      *string `json:"status"`
}

func (h *Handler) handleCreateTask(c *gin.Context) {
	var req createTaskRequest
	if err := decodeJSON(c.Request, &req); err != nil {
		h.badRequest(c, err)
		return
	}

	task, err := h.services.Tasks.CreateTask(c.Request.Context(), service.CreateTaskInput{
		EmployeeID:  req.EmployeeID,
		TaskName:    req.TaskName,
		Description: req.Description,
		DueDate:     req.DueDate,
	})
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

func (h *Handler) handleListTasks(c *gin.Context) {
	tasks, err := h.services.Tasks.ListTasks(c.Request.Context(), service.TaskFilterInput{
		EmployeeID: optionalQuery(c, "employee_id"),
		Status:     optionalQuery(c, "status"),
		DueDate:    optionalQuery(c, "due_date"),
	})
	if err != nil {
		h.respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}
