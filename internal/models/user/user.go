package user

import (
	"strings"
	"unicode/utf8"
)

// Profile is the display identity kept alongside the session token.
type Profile struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// Credential is the single active session: an opaque bearer token and the
// profile it was issued for, if known.
type Credential struct {
	Token string   `json:"token"`
	User  *Profile `json:"user"`
}

type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Message string `json:"message,omitempty"`
	Token   string `json:"token"`
}

// Profile returns the profile the registration describes.
func (r RegisterRequest) Profile() Profile {
	return Profile{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
	}
}

// ProfileFromEmail builds the profile shown after a login. The login endpoint
// returns no profile, so the first name is the email's local part with its
// first character upper-cased; the last name stays empty.
func ProfileFromEmail(email string) Profile {
	local := email
	if i := strings.Index(email, "@"); i >= 0 {
		local = email[:i]
	}

	firstName := local
	if r, size := utf8.DecodeRuneInString(local); size > 0 && r != utf8.RuneError {
		firstName = strings.ToUpper(string(r)) + local[size:]
	}

	return Profile{
		FirstName: firstName,
		LastName:  "",
		Email:     email,
	}
}
