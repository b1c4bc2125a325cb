// File: homeserve/handlers/bundle.go
package handlers

import (
	customerRepoPkg "homeserve/database/repository/customer"
	providerRepoPkg "homeserve/database/repository/provider"
)

// HandlerBundle groups all endpoint handlers, plus the repositories the
// auth middleware needs for token-hash fallback lookups.
type HandlerBundle struct {
	ProviderRepo providerRepoPkg.ProviderRepository
	CustomerRepo customerRepoPkg.CustomerRepository

	Booking  *BookingHandler
	Provider *ProviderHandler
	Customer *CustomerHandler
	Admin    *AdminHandler
	Ticket   *TicketHandler
}
