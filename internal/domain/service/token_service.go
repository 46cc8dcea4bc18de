package service

// TokenService defines the interface for issuing and verifying bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Generate creates a signed, time-limited token embedding the login name
	// as its only application claim.
	Generate(login string) (string, error)

	// Verify checks signature and expiry and returns the embedded login name.
	Verify(token string) (string, error)
}
