package entity

// User is a salesperson or administrator account. Login is unique across the
// system; PasswordHash never holds a plaintext credential.
type User struct {
	ID           string
	Login        string
	Name         string
	PasswordHash string
	Role         string // Free-form role tag (e.g. VENDEDOR, ADMIN).
}
