package employee

import (
	"encoding/json"
	"net/http"
	"strconv"

	employeeerrors "go-employee-api/internal/employee/errors"
	"go-employee-api/internal/shared/apperror"
	"go-employee-api/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Message)
}

// employeeID coerces the :id path parameter to the integer key. A
// value that is not an integer cannot match any row, so it takes the
// not-found path.
func (h *Handler) employeeID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		h.writeServiceError(c, employeeerrors.ErrEmployeeNotFound)
		return 0, false
	}
	return uint(id), true
}

// decodeBody decodes the request body into the untyped record the DTOs
// are built from. UseNumber keeps the salary exact instead of routing
// it through a float64.
func decodeBody(c *gin.Context) (map[string]any, error) {
	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (h *Handler) GetAll(c *gin.Context) {
	ctx := c.Request.Context()
	h.logger.Debug("http get all employees")

	empls, err := h.service.GetAllEmployees(ctx)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, ToListItemResponses(empls))
}

func (h *Handler) GetByID(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := h.employeeID(c)
	if !ok {
		return
	}
	h.logger.Debug("http get employee by id", zap.Uint("employee_id", id))

	empl, err := h.service.GetEmployeeByID(ctx, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, ToDetailResponse(empl))
}

func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	h.logger.Debug("http create employee")

	raw, err := decodeBody(c)
	if err != nil {
		h.logger.Warn("http create employee bad body", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	empl, err := h.service.CreateEmployee(ctx, raw)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, ToDetailResponse(empl))
}

func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := h.employeeID(c)
	if !ok {
		return
	}
	h.logger.Debug("http update employee", zap.Uint("employee_id", id))

	raw, err := decodeBody(c)
	if err != nil {
		h.logger.Warn("http update employee bad body", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	empl, err := h.service.UpdateEmployee(ctx, id, raw)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, ToDetailResponse(empl))
}

func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := h.employeeID(c)
	if !ok {
		return
	}
	h.logger.Debug("http delete employee", zap.Uint("employee_id", id))

	if err := h.service.DeleteEmployee(ctx, id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Employee deleted successfully")
}

func (h *Handler) GetByDepartment(c *gin.Context) {
	ctx := c.Request.Context()
	department := c.Param("department")
	h.logger.Debug("http get employees by department", zap.String("department", department))

	empls, err := h.service.GetEmployeesByDepartment(ctx, department)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, ToListItemResponses(empls))
}
