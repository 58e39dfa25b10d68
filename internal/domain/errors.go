package domain

import "errors"

// Kind - класс ошибки, по которому транспорт выбирает код ответа
type Kind string

const (
	KindNotFound   Kind = "not_found"
	KindConflict   Kind = "conflict"
	KindValidation Kind = "validation"
	KindInternal   Kind = "internal"
)

// Error - бизнес-ошибка с классом и машинно-читаемой причиной
type Error struct {
	Kind    Kind
	Reason  string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind Kind, reason, message string) *Error {
	return &Error{Kind: kind, Reason: reason, Message: message}
}

// Определение бизнес-ошибок
var (
	ErrEmployeeNotFound   = newError(KindNotFound, "EmployeeNotFound", "employee not found")
	ErrDepartmentNotFound = newError(KindNotFound, "DepartmentNotFound", "department not found")
	ErrAccountNotFound    = newError(KindNotFound, "AccountNotFound", "account not found")
	ErrRequestNotFound    = newError(KindNotFound, "RequestNotFound", "request not found")
	ErrTransferNotFound   = newError(KindNotFound, "TransferNotFound", "transfer not found")
	ErrWorkflowNotFound   = newError(KindNotFound, "WorkflowNotFound", "workflow not found")

	ErrSameDepartmentTransfer   = newError(KindConflict, "SameDepartmentTransfer", "employee is already in the target department")
	ErrPendingTransferExists    = newError(KindConflict, "PendingTransferExists", "employee already has a pending transfer")
	ErrDuplicatePendingTransfer = newError(KindConflict, "DuplicatePendingTransfer", "an identical pending transfer already exists")
	ErrAccountInactive          = newError(KindConflict, "AccountInactive", "only active accounts can be assigned as employees")
	ErrAccountAlreadyEmployed   = newError(KindConflict, "AccountAlreadyEmployed", "this account already has an employee profile")
	ErrDuplicateDepartmentName  = newError(KindConflict, "DuplicateDepartmentName", "department with this name already exists")
	ErrDuplicateAccountEmail    = newError(KindConflict, "DuplicateAccountEmail", "account with this email already exists")
	ErrEmployeeIDConflict       = newError(KindConflict, "EmployeeIDConflict", "could not reserve a unique employee id, retry the request")
	ErrWorkflowFinalized        = newError(KindConflict, "WorkflowFinalized", "workflow has already been approved or rejected")

	ErrInvalidStatus       = newError(KindValidation, "InvalidStatus", "status must be one of Pending, Approved, Rejected")
	ErrInvalidRequestType  = newError(KindValidation, "InvalidRequestType", "type must be one of Equipment, Leave, Resources")
	ErrInvalidWorkflowType = newError(KindValidation, "InvalidWorkflowType", "type must be one of Request Approval, Department Transfer")
	ErrInvalidHireDate     = newError(KindValidation, "InvalidHireDate", "hire_date must be a date in YYYY-MM-DD format")
	ErrMissingDepartment   = newError(KindValidation, "MissingField", "target department is required")
	ErrMissingEmployeeID   = newError(KindValidation, "MissingField", "employee id is required")
	ErrInvalidEmployeeID   = newError(KindValidation, "InvalidEmployeeID", "employee id must look like EMP001")
	ErrDepartmentReadOnly  = newError(KindValidation, "DepartmentReadOnly", "department changes only through an approved transfer")
)

// KindOf возвращает класс ошибки; всё, что не является *Error, считается внутренней ошибкой
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}
	return KindInternal
}

// ReasonOf возвращает причину бизнес-ошибки или пустую строку
func ReasonOf(err error) string {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Reason
	}
	return ""
}
