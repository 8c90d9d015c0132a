package models

// Customer is a row in the customers table.
type Customer struct {
	CustomerID string `db:"customer_id"`
	Name       string `db:"name"`
	CNIC       string `db:"cnic"`
	Phone      string `db:"phone"`
	Email      string `db:"email"`
	AuditFields
}
