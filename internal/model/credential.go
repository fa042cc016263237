package model

// User identifies the person who completed a bank enrollment.
type User struct {
	ID string `json:"id"`
}

// Credential is the bearer credential produced by a successful bank
// enrollment. It is written once at link time and attached to every
// authenticated request until disconnect.
type Credential struct {
	AccessToken string `json:"accessToken"`
	User        User   `json:"user"`
}

// Valid reports whether the credential carries a usable token.
func (c Credential) Valid() bool {
	return c.AccessToken != ""
}
