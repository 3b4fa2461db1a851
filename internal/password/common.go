package password

import (
	_ "embed"
	"strings"
)

//go:embed common-passwords.txt
var commonPasswordFileContent string

var wordsSet map[string]struct{}

func init() {
	wordsSet = make(map[string]struct{})
	lines := strings.Split(commonPasswordFileContent, "\n")
	for _, line := range lines {
		line = strings.ToLower(strings.TrimSpace(line))
		if line != "" {
			wordsSet[line] = struct{}{}
		}
	}
}

// IsCommon reports whether the password is on the denylist. Matching is
// exact after lower-casing.
func IsCommon(password string) bool {
	_, ok := wordsSet[strings.ToLower(password)]
	return ok
}

type commonPolicy struct {
}

func (p *commonPolicy) Satisfied(password string) bool {
	return !IsCommon(password)
}
