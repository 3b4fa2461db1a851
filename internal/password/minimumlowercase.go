package password

type minimumLowerCasePolicy struct {
	MinAmount int `json:"minAmount"`
}

func (p *minimumLowerCasePolicy) Satisfied(password string) bool {
	amount := 0
	for _, c := range password {
		if c >= 'a' && c <= 'z' {
			amount++
		}
	}

	return amount >= p.MinAmount
}
