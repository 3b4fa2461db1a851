package password

import "strings"

// emailPolicy rejects passwords that contain the account email. Only that
// direction is checked; an email containing the password is fine.
type emailPolicy struct {
	Email string
}

func (p *emailPolicy) Satisfied(password string) bool {
	if p.Email == "" {
		return true
	}

	return !strings.Contains(strings.ToLower(password), strings.ToLower(p.Email))
}
