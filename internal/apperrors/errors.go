package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that a concurrent mutation won the race for the same row.
var ErrConflict = errors.New("conflicting concurrent update")

// ErrPlanLocked indicates that an installment plan can no longer be edited
// because at least one installment in it has received payment.
var ErrPlanLocked = errors.New("installment plan is locked")

// ErrAlreadyScheduled indicates that a repayment schedule already exists for the transaction.
var ErrAlreadyScheduled = errors.New("installments already scheduled")

// ErrDataUnavailable indicates a storage read/write failure underneath an operation.
var ErrDataUnavailable = errors.New("data store unavailable")
