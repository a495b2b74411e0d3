// Package handler is the first layer after the router.
//
// It binds requests, validates input through the validation package and
// calls the service layer, acting as the interface between HTTP and the
// business logic.
package handler
