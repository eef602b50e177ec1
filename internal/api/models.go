package api

// Common response structures

// RegisterResponse acknowledges a successful registration.
type RegisterResponse struct {
	Message string `json:"message"`
}

// LoginResponse carries a freshly issued bearer token.
type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int    `json:"expires_in"`
}

// PublicProfileResponse is the unauthenticated-safe subset of profile
// fields. Pointer fields serialize as null when no profile row exists.
type PublicProfileResponse struct {
	Email     string  `json:"email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

// ProfileResponse is the full profile returned to the owner.
type ProfileResponse struct {
	PublicProfileResponse
	DOB     *string `json:"dob"`
	Address *string `json:"address"`
}

// ProfileEchoResponse echoes the stored fields after a profile write.
type ProfileEchoResponse struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	DOB       string `json:"dob"`
	Address   string `json:"address"`
}
