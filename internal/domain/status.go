package domain

// Status - состояние процесса согласования и зеркальных ему заявки и перевода
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// Valid сообщает, входит ли значение в допустимый набор
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Terminal сообщает, является ли состояние конечным
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// RetransitionPolicy определяет, можно ли менять статус уже решённого процесса
type RetransitionPolicy string

const (
	RetransitionForbid RetransitionPolicy = "forbid"
	RetransitionAllow  RetransitionPolicy = "allow"
)

// CheckTransition проверяет переход from -> to.
// Повтор того же статуса допустим всегда и ничего не меняет.
func CheckTransition(from, to Status, policy RetransitionPolicy) error {
	if !to.Valid() {
		return ErrInvalidStatus
	}
	if from == to || !from.Terminal() {
		return nil
	}
	if policy == RetransitionAllow {
		return nil
	}
	return ErrWorkflowFinalized
}

// MovesEmployee сообщает, должен ли переход from -> to переводить сотрудника.
// Повторное одобрение не выполняет перевод второй раз.
func MovesEmployee(from, to Status) bool {
	return to == StatusApproved && from != StatusApproved
}
