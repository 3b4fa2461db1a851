package password

import "unicode/utf8"

type minLengthPolicy struct {
	MinLength int `json:"minLength"`
}

func (p *minLengthPolicy) Satisfied(password string) bool {
	return utf8.RuneCountInString(password) >= p.MinLength
}
