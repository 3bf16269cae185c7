package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/DuyPhong1504/duyphong-app/internal/apperror"
	"github.com/DuyPhong1504/duyphong-app/internal/service"
)

// Services bundles the domain operations exposed over HTTP.
type Services struct {
	Departments service.DepartmentManager
	Employees   service.EmployeeManager
	Tasks       service.TaskManager
	LunchLogs   service.LunchLogManager
}

type Handler struct {
	services Services
	logger   logrus.FieldLogger
	engine   *gin.Engine
	now      func() time.Time
}

// NewHandler builds the router. Extra middleware runs after request logging
// and panic recovery.
func NewHandler(services Services, logger logrus.FieldLogger, middleware ...gin.HandlerFunc) *Handler {
	h := &Handler{
		services: services,
		logger:   logger,
		engine:   gin.New(),
		now:      time.Now,
	}

	h.engine.HandleMethodNotAllowed = true
	h.engine.Use(requestLogger(logger), gin.CustomRecovery(h.recoverPanic))
	h.engine.Use(middleware...)

	h.engine.NoRoute(func(c *gin.Context) {
		h.writeError(c, http.StatusNotFound, "Not Found", "route not found", nil)
	})
	h.engine.NoMethod(func(c *gin.Context) {
		h.writeError(c, http.StatusMethodNotAllowed, "Method Not Allowed", "method not allowed", nil)
	})

	h.engine.GET("/healthcheck", healthcheck)

	api := h.engine.Group("/api")

	departments := api.Group("/departments")
	departments.GET("", h.handleListDepartments)
	departments.POST("", h.handleCreateDepartment)
	departments.GET("/average-salaries", h.handleAverageSalaries)
	departments.GET("/statistics/:id", h.handleDepartmentStatistics)

	employees := api.Group("/employees")
	employees.GET("/:id", h.handleGetEmployee)
	employees.GET("/detail/:id", h.handleGetEmployeeDetail)
	employees.GET("/:id/department-history", h.handleDepartmentHistory)
	employees.PUT("/:id", h.handleUpdateEmployee)
	employees.PUT("/department/:id", h.handleTransferDepartment)

	tasks := api.Group("/tasks")
	tasks.POST("", h.handleCreateTask)
	tasks.GET("", h.handleListTasks)

	api.POST("/lunch-logs/bulk", h.handleCreateLunchLogs)

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.engine.ServeHTTP(w, r)
}

func healthcheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func requestLogger(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.RequestURI(),
			"status":   c.Writer.Status(),
			"duration": time.Since(start),
		}).Info("request handled")
	}
}

func (h *Handler) recoverPanic(c *gin.Context, recovered any) {
	h.logger.WithField("panic", recovered).Error("panic while handling request")
	h.writeError(c, http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred", nil)
}

type errorResponse struct {
	Timestamp   time.Time         `json:"timestamp"`
	Status      int               `json:"status"`
	Error       string            `json:"error"`
	Message     string            `json:"message"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
}

func (h *Handler) respondWithError(c *gin.Context, err error) {
	switch apperror.GetCode(err) {
	case apperror.CodeValidation:
		fields := apperror.FieldsOf(err)
		label := "Bad Request"
		if len(fields) > 0 {
			label = "Validation Failed"
		}
		h.writeError(c, http.StatusBadRequest, label, err.Error(), fields)
	case apperror.CodeNotFound:
		h.writeError(c, http.StatusNotFound, "Not Found", err.Error(), nil)
	case apperror.CodeConflict:
		h.writeError(c, http.StatusBadRequest, "Conflict", err.Error(), nil)
	default:
		h.logger.WithField("path", c.Request.URL.Path).Errorf("unexpected error: %+v", err)
		h.writeError(c, http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred", nil)
	}
}

func (h *Handler) badRequest(c *gin.Context, err error) {
	h.writeError(c, http.StatusBadRequest, "Bad Request", err.Error(), nil)
}

func (h *Handler) writeError(c *gin.Context, status int, label string, message string, fields apperror.Fields) {
	c.AbortWithStatusJSON(status, errorResponse{
		Timestamp:   h.now().UTC(),
		Status:      status,
		Error:       label,
		Message:     message,
		FieldErrors: fields,
	})
}

func decodeJSON(r *http.Request, target interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return errors.New("request body is required")
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is required")
		}
		return errors.New("invalid JSON body")
	}

	var extra json.RawMessage
	if err := decoder.Decode(&extra); err != io.EOF {
		return errors.New("invalid JSON body")
	}
	return nil
}

// optionalQuery treats a blank parameter the same as a missing one.
func optionalQuery(c *gin.Context, key string) *string {
	value, ok := c.GetQuery(key)
	if !ok || strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}
