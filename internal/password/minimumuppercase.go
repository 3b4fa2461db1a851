package password

type minimumUpperCasePolicy struct {
	MinAmount int `json:"minAmount"`
}

func (p *minimumUpperCasePolicy) Satisfied(password string) bool {
	amount := 0
	for _, c := range password {
		if c >= 'A' && c <= 'Z' {
			amount++
		}
	}

	return amount >= p.MinAmount
}
