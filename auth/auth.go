package auth

// Credentials holds the expected basic-auth identity configured at startup.
// The gateway trusts the transport for confidentiality; passwords are
// compared in the clear.
type Credentials struct {
	Username string
	Password string
}

// Check reports whether the supplied basic-auth values match the configured
// ones. Comparison is exact and case-sensitive. A request that omitted the
// password compares as the empty string rather than failing differently.
func (c Credentials) Check(username, password string) bool {
	return username == c.Username && password == c.Password
}
