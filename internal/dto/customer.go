package dto

import "github.com/sitara-travels/lms-backend/internal/core/domain"

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	CustomerID string `json:"customerID"`
	Name       string `json:"name"`
	CNIC       string `json:"cnic"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse DTO.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID: c.CustomerID,
		Name:       c.Name,
		CNIC:       c.CNIC,
		Phone:      c.Phone,
		Email:      c.Email,
	}
}
