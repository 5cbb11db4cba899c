package handler

import "time"

// errorResponse documents the standard error envelope rendered by the central
// HTTP error handler on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type createEmployeeRequest struct {
	Username string `json:"username"  validate:"required,min=2,max=32"`
	Name     string `json:"name"      validate:"required,max=64"`
	Phone    string `json:"phone"     validate:"omitempty,max=20"`
	Sex      string `json:"sex"       validate:"omitempty,oneof=male female"`
	IDNumber string `json:"id_number" validate:"omitempty,max=32"`
}

type updateEmployeeRequest struct {
	ID       int64  `json:"id"        validate:"required,gt=0"`
	Name     string `json:"name"      validate:"required,max=64"`
	Phone    string `json:"phone"     validate:"omitempty,max=20"`
	Sex      string `json:"sex"       validate:"omitempty,oneof=male female"`
	IDNumber string `json:"id_number" validate:"omitempty,max=32"`
}

// --- Response types ---
// Response-only types owned by the transport layer, intentionally separate
// from domain types so the JSON contract is not coupled to internal changes.

type loginResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Token    string `json:"token"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type employeeResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Sex       string    `json:"sex,omitempty"`
	IDNumber  string    `json:"id_number,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedBy int64     `json:"created_by"`
	UpdatedBy int64     `json:"updated_by"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

type listEmployeesResponse struct {
	Data       []employeeResponse `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}
