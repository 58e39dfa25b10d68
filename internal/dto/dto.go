package dto

import (
	"time"
)

// CreateAccountRequest - запрос на создание учётной записи
type CreateAccountRequest struct {
	Email  string  `json:"email" validate:"required,email,max=255"`
	Status *string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// AccountResponse - ответ с данными учётной записи
type AccountResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateDepartmentRequest - запрос на создание подразделения
type CreateDepartmentRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

// UpdateDepartmentRequest - запрос на обновление подразделения
type UpdateDepartmentRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

// DepartmentResponse - ответ с данными подразделения
type DepartmentResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Description   *string `json:"description"`
	EmployeeCount int     `json:"employee_count"`
}

// CreateEmployeeRequest - запрос на создание сотрудника.
// Идентификатор не передаётся, он назначается сервером.
type CreateEmployeeRequest struct {
	AccountID  int64   `json:"account_id" validate:"required,min=1"`
	Department *string `json:"department" validate:"omitempty,min=1,max=200"`
	Position   string  `json:"position" validate:"required,min=1,max=200"`
	HireDate   string  `json:"hire_date" validate:"required,datetime=2006-01-02"`
	Status     *string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// UpdateEmployeeRequest - запрос на обновление сотрудника.
// Department принимается только чтобы явно отклонить его.
type UpdateEmployeeRequest struct {
	Department *string `json:"department"`
	Position   *string `json:"position" validate:"omitempty,min=1,max=200"`
	HireDate   *string `json:"hire_date" validate:"omitempty,datetime=2006-01-02"`
	Status     *string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// EmployeeResponse - ответ с данными сотрудника
type EmployeeResponse struct {
	EmployeeID   string  `json:"employee_id"`
	AccountID    int64   `json:"account_id"`
	Email        *string `json:"email"`
	DepartmentID *int64  `json:"department_id"`
	Department   *string `json:"department"`
	Position     string  `json:"position"`
	HireDate     string  `json:"hire_date"`
	Status       string  `json:"status"`
}

// NextEmployeeIDResponse - следующий свободный идентификатор сотрудника
type NextEmployeeIDResponse struct {
	EmployeeID string `json:"employee_id"`
}

// EmployeeSummary - сведения о владельце заявки, перевода или процесса
type EmployeeSummary struct {
	EmployeeID string  `json:"employee_id"`
	Email      *string `json:"email"`
	Department *string `json:"department"`
}

// CreateTransferRequest - запрос на перевод в другое подразделение
type CreateTransferRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,max=20"`
	Department string `json:"department" validate:"required,max=200"`
}

// TransferResponse - ответ с данными перевода
type TransferResponse struct {
	ID         int64            `json:"id"`
	EmployeeID string           `json:"employee_id"`
	Employee   *EmployeeSummary `json:"employee,omitempty"`
	FromDept   string           `json:"from_dept"`
	ToDept     string           `json:"to_dept"`
	Status     string           `json:"status"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// CreateTransferResponse - ответ на создание перевода
type CreateTransferResponse struct {
	Message  string           `json:"message"`
	Transfer TransferResponse `json:"transfer"`
}

// RequestItem - позиция заявки. Если количество не указано, считается 1.
type RequestItem struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Quantity *int   `json:"qty" validate:"omitempty,min=1"`
}

// CreateRequestRequest - запрос на создание заявки
type CreateRequestRequest struct {
	EmployeeID string        `json:"employee_id" validate:"required,max=20"`
	Type       string        `json:"type" validate:"required,oneof=Equipment Leave Resources"`
	Items      []RequestItem `json:"items" validate:"omitempty,dive"`
}

// UpdateRequestRequest - изменение содержимого заявки; статус меняется только через процесс
type UpdateRequestRequest struct {
	Type  *string       `json:"type" validate:"omitempty,oneof=Equipment Leave Resources"`
	Items []RequestItem `json:"items" validate:"omitempty,dive"`
}

// RequestItemResponse - позиция заявки в ответе
type RequestItemResponse struct {
	Name     string `json:"name"`
	Quantity int    `json:"qty"`
}

// RequestResponse - ответ с данными заявки
type RequestResponse struct {
	ID         int64                 `json:"id"`
	Type       string                `json:"type"`
	EmployeeID string                `json:"employee_id"`
	Employee   *EmployeeSummary      `json:"employee,omitempty"`
	Status     string                `json:"status"`
	Items      []RequestItemResponse `json:"items"`
	CreatedAt  time.Time             `json:"created_at"`
	UpdatedAt  time.Time             `json:"updated_at"`
}

// UpdateWorkflowRequest - изменение процесса согласования
type UpdateWorkflowRequest struct {
	Status  *string `json:"status" validate:"omitempty,oneof=Pending Approved Rejected"`
	Details *string `json:"details" validate:"omitempty,max=2000"`
	Type    *string `json:"type" validate:"omitempty,oneof='Request Approval' 'Department Transfer'"`
}

// WorkflowResponse - ответ с данными процесса и связанной сущностью
type WorkflowResponse struct {
	ID         int64             `json:"id"`
	Type       string            `json:"type"`
	Details    string            `json:"details"`
	EmployeeID string            `json:"employee_id"`
	Employee   *EmployeeSummary  `json:"employee,omitempty"`
	Status     string            `json:"status"`
	RequestID  *int64            `json:"request_id"`
	TransferID *int64            `json:"transfer_id"`
	Request    *RequestResponse  `json:"request,omitempty"`
	Transfer   *TransferResponse `json:"transfer,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`
}
