package domain

// Class represents a school class whose members pay into a shared fund.
type Class struct {
	ClassID string `json:"classID"` // Primary Key (UUID)
	Name    string `json:"name"`
	AuditFields
}
