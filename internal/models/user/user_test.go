package user

import "testing"

func TestProfileFromEmail(t *testing.T) {
	tests := []struct {
		email     string
		firstName string
	}{
		{"john@example.com", "John"},
		{"jane.doe@example.com", "Jane.doe"},
		{"aLICE@example.com", "ALICE"},
		{"Bob@example.com", "Bob"},
		{"42nd@example.com", "42nd"},
		{"émile@example.fr", "Émile"},
		{"nodomain", "Nodomain"},
		{"@example.com", ""},
	}

	for _, tt := range tests {
		p := ProfileFromEmail(tt.email)
		if p.FirstName != tt.firstName {
			t.Errorf("ProfileFromEmail(%q).FirstName = %q, want %q", tt.email, p.FirstName, tt.firstName)
		}
		if p.LastName != "" {
			t.Errorf("ProfileFromEmail(%q).LastName = %q, want empty", tt.email, p.LastName)
		}
		if p.Email != tt.email {
			t.Errorf("ProfileFromEmail(%q).Email = %q", tt.email, p.Email)
		}
	}
}

func TestRegisterRequest_Profile(t *testing.T) {
	req := RegisterRequest{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Password: "Secret123"}

	p := req.Profile()
	if p != (Profile{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}) {
		t.Errorf("unexpected profile: %+v", p)
	}
}
