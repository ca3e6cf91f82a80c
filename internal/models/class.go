package models

// Class is the persistence shape of a class row.
type Class struct {
	ClassID string `db:"class_id"`
	Name    string `db:"name"`
	AuditFields
}
