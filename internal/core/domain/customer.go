package domain

// Customer is a person who may hold loans. Created on first loan; the LMS core
// never deletes customers (that is an admin concern elsewhere in the portal).
type Customer struct {
	CustomerID string `json:"customerID"` // Primary Key (UUID)
	Name       string `json:"name"`
	CNIC       string `json:"cnic"` // National identity number; unique per customer
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	AuditFields
}
