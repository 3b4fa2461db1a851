package password

import "strings"

// SpecialCharacters lists every character counted as special.
const SpecialCharacters = `!@#$%^&*()_+-=[]{};'"\|,.<>/?`

type minimumSpecialPolicy struct {
	MinAmount int `json:"minAmount"`
}

func (p *minimumSpecialPolicy) Satisfied(password string) bool {
	amount := 0
	for _, c := range password {
		if strings.ContainsRune(SpecialCharacters, c) {
			amount++
		}
	}

	return amount >= p.MinAmount
}
