package password

type minimumNumbersPolicy struct {
	MinAmount int `json:"minAmount"`
}

func (p *minimumNumbersPolicy) Satisfied(password string) bool {
	amount := 0
	for _, c := range password {
		if c >= '0' && c <= '9' {
			amount++
		}
	}

	return amount >= p.MinAmount
}
