package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/quickserve/ordering-system/internal/api/metrics"
	"github.com/quickserve/ordering-system/internal/core/domain"
	"github.com/quickserve/ordering-system/internal/core/ports"
)

// EmployeeHandler handles the administrative employee CRUD endpoints. All of
// them require authentication; the operator id set by the Auth middleware is
// threaded explicitly into every service call.
type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// Create handles POST /admin/employee — creates an account with defaults.
//
// @Summary      Create an employee account
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEmployeeRequest  true  "Employee details"
// @Success      201   {object}  employeeResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /admin/employee [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req createEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	operator, err := operatorID(c)
	if err != nil {
		return err
	}

	created, err := h.service.CreateEmployee(c.Request().Context(), ports.CreateEmployeeInput{
		Username:   req.Username,
		Name:       req.Name,
		Phone:      req.Phone,
		Sex:        req.Sex,
		IDNumber:   req.IDNumber,
		OperatorID: operator,
	})
	if err != nil {
		return err
	}
	metrics.EmployeesCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, toEmployeeResponse(created))
}

// Page handles GET /admin/employee/page — paginated listing with an optional
// name filter.
//
// @Summary      List employees (paginated)
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        page       query     int     false  "Page number (1-based)"
// @Param        page_size  query     int     false  "Rows per page (max 100)"
// @Param        name       query     string  false  "Substring filter on display name"
// @Success      200        {object}  listEmployeesResponse
// @Failure      401        {object}  errorResponse
// @Router       /admin/employee/page [get]
func (h *EmployeeHandler) Page(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("page_size"))

	result, err := h.service.ListEmployees(c.Request().Context(), ports.ListEmployeesInput{
		Name:     c.QueryParam("name"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return err
	}

	items := make([]employeeResponse, 0, len(result.Items))
	for _, e := range result.Items {
		items = append(items, toEmployeeResponse(e))
	}

	return c.JSON(http.StatusOK, listEmployeesResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			PageSize:   result.PageSize,
			TotalPages: result.TotalPages,
		},
	})
}

// SetStatus handles POST /admin/employee/status/:status — enables (1) or
// disables (0) an account.
//
// @Summary      Enable or disable an employee account
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        status  path      int    true  "1 to enable, 0 to disable"
// @Param        id      query     int    true  "Employee id"
// @Success      200     {object}  messageResponse
// @Failure      400     {object}  errorResponse
// @Failure      401     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /admin/employee/status/{status} [post]
func (h *EmployeeHandler) SetStatus(c echo.Context) error {
	status, err := parseStatus(c.Param("status"))
	if err != nil {
		return err
	}

	id, err := strconv.ParseInt(c.QueryParam("id"), 10, 64)
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid employee id")
	}

	operator, err := operatorID(c)
	if err != nil {
		return err
	}

	if err := h.service.SetStatus(c.Request().Context(), id, status, operator); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "status updated"})
}

// GetByID handles GET /admin/employee/:id.
//
// @Summary      Get an employee by id
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Employee id"
// @Success      200  {object}  employeeResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/employee/{id} [get]
func (h *EmployeeHandler) GetByID(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid employee id")
	}

	emp, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEmployeeResponse(emp))
}

// Update handles PUT /admin/employee — edits the mutable profile fields.
// The username cannot be changed after creation.
//
// @Summary      Update an employee's profile
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateEmployeeRequest  true  "Updated fields"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /admin/employee [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	var req updateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	operator, err := operatorID(c)
	if err != nil {
		return err
	}

	if err := h.service.UpdateEmployee(c.Request().Context(), ports.UpdateEmployeeInput{
		ID:         req.ID,
		Name:       req.Name,
		Phone:      req.Phone,
		Sex:        req.Sex,
		IDNumber:   req.IDNumber,
		OperatorID: operator,
	}); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "employee updated"})
}

// parseStatus translates the wire format (1 enable, 0 disable) to the domain enum.
func parseStatus(raw string) (domain.EmployeeStatus, error) {
	switch raw {
	case "1":
		return domain.StatusEnabled, nil
	case "0":
		return domain.StatusDisabled, nil
	default:
		return "", echo.NewHTTPError(http.StatusBadRequest, "status must be 1 (enable) or 0 (disable)")
	}
}

// toEmployeeResponse maps the domain entity to the transport contract. The
// password hash has no counterpart here and can never leak.
func toEmployeeResponse(e *domain.Employee) employeeResponse {
	return employeeResponse{
		ID:        e.ID,
		Username:  e.Username,
		Name:      e.Name,
		Phone:     e.Phone,
		Sex:       e.Sex,
		IDNumber:  e.IDNumber,
		Status:    string(e.Status),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
		CreatedBy: e.CreatedBy,
		UpdatedBy: e.UpdatedBy,
	}
}
