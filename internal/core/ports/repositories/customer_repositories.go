package repositories

import (
	"context"

	"github.com/sitara-travels/lms-backend/internal/core/domain"
)

// CustomerReader defines read operations for customer data.
type CustomerReader interface {
	// FindCustomerByID retrieves a customer by its unique identifier.
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// FindCustomerByCNIC retrieves a customer by national identity number.
	// Used to attach a new loan to an existing customer.
	FindCustomerByCNIC(ctx context.Context, cnic string) (*domain.Customer, error)
}

// CustomerWriter defines write operations for customer data.
type CustomerWriter interface {
	// SaveCustomer inserts a new customer.
	SaveCustomer(ctx context.Context, customer domain.Customer) error
}

// CustomerRepositoryFacade combines all customer repository interfaces.
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}
