// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Customer represents a client record owned by a salesperson.
// References to other records (orders, salesperson) are opaque ids resolved
// by separate lookups; no relational constraints are enforced by the store.
type Customer struct {
	ID            string   // Generated unique id, assigned on creation.
	Name          string   // First name.
	Surname       string   // Last name.
	Company       string   // Company the customer belongs to.
	Emails        []string // Contact email addresses.
	Age           int
	Category      string   // Free-form category tag (e.g. BASIC, PREMIUM).
	Orders        []string // References to orders associated with this customer.
	SalespersonID string   // Reference to the owning salesperson's user record.
}
