package domain

import (
	"time"
)

// AccountStatus - статус учётной записи
type AccountStatus string

const (
	AccountActive   AccountStatus = "Active"
	AccountInactive AccountStatus = "Inactive"
)

// Account представляет учётную запись, к которой привязывается сотрудник
type Account struct {
	ID        int64         `gorm:"primaryKey;autoIncrement"`
	Email     string        `gorm:"type:varchar(255);not null;uniqueIndex"`
	Status    AccountStatus `gorm:"type:varchar(20);not null;default:Active"`
	CreatedAt time.Time     `gorm:"autoCreateTime"`
}

// TableName задаёт имя таблицы для GORM
func (Account) TableName() string {
	return "accounts"
}

// Department представляет подразделение организации
type Department struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"type:varchar(200);not null;uniqueIndex"`
	Description *string `gorm:"type:text"`

	Employees []Employee `gorm:"foreignKey:DepartmentID"`
}

// TableName задаёт имя таблицы для GORM
func (Department) TableName() string {
	return "departments"
}

// EmployeeStatus - статус сотрудника
type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "Active"
	EmployeeInactive EmployeeStatus = "Inactive"
)

// Employee представляет сотрудника.
// DepartmentID меняется только движком согласований при одобрении перевода.
type Employee struct {
	EmployeeID   string         `gorm:"primaryKey;type:varchar(20)"`
	AccountID    int64          `gorm:"not null;uniqueIndex"`
	DepartmentID *int64         `gorm:"index"`
	Position     string         `gorm:"type:varchar(200)"`
	HireDate     time.Time      `gorm:"type:date;not null"`
	Status       EmployeeStatus `gorm:"type:varchar(20);not null;default:Active"`

	Account    *Account    `gorm:"foreignKey:AccountID"`
	Department *Department `gorm:"foreignKey:DepartmentID"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return "employees"
}

// Email возвращает email учётной записи, если она загружена
func (e *Employee) Email() *string {
	if e == nil || e.Account == nil {
		return nil
	}
	email := e.Account.Email
	return &email
}

// DepartmentName возвращает название текущего подразделения или nil
func (e *Employee) DepartmentName() *string {
	if e == nil || e.Department == nil {
		return nil
	}
	name := e.Department.Name
	return &name
}

// RequestType - вид заявки сотрудника
type RequestType string

const (
	RequestEquipment RequestType = "Equipment"
	RequestLeave     RequestType = "Leave"
	RequestResources RequestType = "Resources"
)

// Valid сообщает, входит ли значение в допустимый набор
func (t RequestType) Valid() bool {
	switch t {
	case RequestEquipment, RequestLeave, RequestResources:
		return true
	}
	return false
}

// RequestItem - позиция заявки
type RequestItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"qty"`
}

// Request представляет заявку на ресурсы или отпуск
type Request struct {
	ID         int64         `gorm:"primaryKey;autoIncrement"`
	Type       RequestType   `gorm:"type:varchar(20);not null"`
	EmployeeID string        `gorm:"type:varchar(20);not null;index"`
	Status     Status        `gorm:"type:varchar(20);not null;default:Pending"`
	Items      []RequestItem `gorm:"serializer:json"`
	CreatedAt  time.Time     `gorm:"autoCreateTime"`
	UpdatedAt  time.Time     `gorm:"autoUpdateTime"`

	Employee *Employee `gorm:"foreignKey:EmployeeID;references:EmployeeID"`
}

// TableName задаёт имя таблицы для GORM
func (Request) TableName() string {
	return "requests"
}

// UnknownDepartment записывается в FromDept, если сотрудник не состоит в подразделении
const UnknownDepartment = "Unknown"

// Transfer представляет заявку на перевод в другое подразделение.
// FromDept и ToDept - снимки названий на момент создания, а не ссылки.
type Transfer struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	EmployeeID string    `gorm:"type:varchar(20);not null;index"`
	FromDept   string    `gorm:"type:varchar(200);not null"`
	ToDept     string    `gorm:"type:varchar(200);not null"`
	Status     Status    `gorm:"type:varchar(20);not null;default:Pending"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`

	Employee *Employee `gorm:"foreignKey:EmployeeID;references:EmployeeID"`
}

// TableName задаёт имя таблицы для GORM
func (Transfer) TableName() string {
	return "transfers"
}

// WorkflowType - вид процесса согласования
type WorkflowType string

const (
	WorkflowRequestApproval    WorkflowType = "Request Approval"
	WorkflowDepartmentTransfer WorkflowType = "Department Transfer"
)

// Valid сообщает, входит ли значение в допустимый набор
func (t WorkflowType) Valid() bool {
	return t == WorkflowRequestApproval || t == WorkflowDepartmentTransfer
}

// Workflow - единственная изменяемая точка согласования заявки или перевода.
// Ровно одно из полей RequestID/TransferID заполнено; это же проверяет CHECK в схеме.
type Workflow struct {
	ID         int64        `gorm:"primaryKey;autoIncrement"`
	Type       WorkflowType `gorm:"type:varchar(50);not null"`
	Details    string       `gorm:"type:text"`
	EmployeeID string       `gorm:"type:varchar(20);not null;index"`
	RequestID  *int64       `gorm:"uniqueIndex"`
	TransferID *int64       `gorm:"uniqueIndex"`
	Status     Status       `gorm:"type:varchar(20);not null;default:Pending"`
	CreatedAt  time.Time    `gorm:"autoCreateTime"`
	UpdatedAt  time.Time    `gorm:"autoUpdateTime"`

	Employee *Employee `gorm:"foreignKey:EmployeeID;references:EmployeeID"`
	Request  *Request  `gorm:"foreignKey:RequestID"`
	Transfer *Transfer `gorm:"foreignKey:TransferID"`
}

// TableName задаёт имя таблицы для GORM
func (Workflow) TableName() string {
	return "workflows"
}

// NewRequestWorkflow создаёт процесс согласования для заявки
func NewRequestWorkflow(req *Request) *Workflow {
	id := req.ID
	return &Workflow{
		Type:       WorkflowRequestApproval,
		Details:    "Request created",
		EmployeeID: req.EmployeeID,
		RequestID:  &id,
		Status:     StatusPending,
	}
}

// NewTransferWorkflow создаёт процесс согласования для перевода
func NewTransferWorkflow(t *Transfer) *Workflow {
	id := t.ID
	return &Workflow{
		Type:       WorkflowDepartmentTransfer,
		Details:    "Transfer request from " + t.FromDept + " to " + t.ToDept,
		EmployeeID: t.EmployeeID,
		TransferID: &id,
		Status:     StatusPending,
	}
}

// LinkKind - вид сущности, которую отслеживает процесс
type LinkKind int

const (
	LinkNone LinkKind = iota
	LinkRequest
	LinkTransfer
)

// Link - связанная с процессом сущность
type Link struct {
	Kind LinkKind
	ID   int64
}

// Link возвращает связанную сущность процесса.
// Некорректная запись с обоими или ни одним полем даёт LinkNone.
func (w *Workflow) Link() Link {
	switch {
	case w.RequestID != nil && w.TransferID == nil:
		return Link{Kind: LinkRequest, ID: *w.RequestID}
	case w.TransferID != nil && w.RequestID == nil:
		return Link{Kind: LinkTransfer, ID: *w.TransferID}
	default:
		return Link{Kind: LinkNone}
	}
}
