package password

import (
	"errors"
	"unicode/utf8"

	"github.com/skycruzer/fleet-management-v2-sub013/utils"
)

const (
	MinLength      = 12
	BonusLength    = 16
	MaxScore       = 4
	ValidThreshold = 3
)

const (
	MessageTooShort      = "Password must be at least 12 characters long"
	MessageNoUppercase   = "Add at least one uppercase letter"
	MessageNoLowercase   = "Add at least one lowercase letter"
	MessageNoNumber      = "Add at least one number"
	MessageNoSpecial     = "Add at least one special character"
	MessageTooCommon     = "This password is too common"
	MessageContainsEmail = "Password cannot contain your email"
	SuggestionLonger     = "Use a longer passphrase"
	SuggestionUnique     = "Use a unique password"
)

type Strength struct {
	Length       bool `json:"length"`
	HasUppercase bool `json:"hasUppercase"`
	HasLowercase bool `json:"hasLowercase"`
	HasNumber    bool `json:"hasNumber"`
	HasSpecial   bool `json:"hasSpecial"`
	NotCommon    bool `json:"notCommon"`
}

// Result is the outcome of a single evaluation. Errors and Suggestions are
// never nil.
type Result struct {
	IsValid     bool     `json:"isValid"`
	Score       int      `json:"score"`
	Errors      []string `json:"errors"`
	Suggestions []string `json:"suggestions"`
	Strength    Strength `json:"strength"`
}

func (r Result) Label() string {
	return Label(r.Score)
}

func (r Result) Color() string {
	return Color(r.Score)
}

// Err joins the error messages into a single error, nil when there are none.
func (r Result) Err() error {
	aggregateErr := make([]error, 0, len(r.Errors))
	for _, msg := range r.Errors {
		aggregateErr = append(aggregateErr, errors.New(msg))
	}

	return errors.Join(aggregateErr...)
}

// Truncated returns a copy of the result keeping at most limit errors.
func (r Result) Truncated(limit int) Result {
	truncated := r
	truncated.Errors = utils.Take(r.Errors, limit)
	return truncated
}

//go:generate mockgen -destination=./mock/mock_evaluator.go -package=mock . Evaluator
type Evaluator interface {
	Evaluate(password string, email string) Result
}

type Policy interface {
	Satisfied(password string) bool
}

type rule struct {
	policy     Policy
	flag       func(strength *Strength) *bool
	message    string
	suggestion string
}

// rules run in order; the order fixes the order of Errors and Suggestions.
var rules = []rule{
	{
		policy:     &minLengthPolicy{MinLength: MinLength},
		flag:       func(strength *Strength) *bool { return &strength.Length },
		message:    MessageTooShort,
		suggestion: SuggestionLonger,
	},
	{
		policy:  &minimumUpperCasePolicy{MinAmount: 1},
		flag:    func(strength *Strength) *bool { return &strength.HasUppercase },
		message: MessageNoUppercase,
	},
	{
		policy:  &minimumLowerCasePolicy{MinAmount: 1},
		flag:    func(strength *Strength) *bool { return &strength.HasLowercase },
		message: MessageNoLowercase,
	},
	{
		policy:  &minimumNumbersPolicy{MinAmount: 1},
		flag:    func(strength *Strength) *bool { return &strength.HasNumber },
		message: MessageNoNumber,
	},
	{
		policy:  &minimumSpecialPolicy{MinAmount: 1},
		flag:    func(strength *Strength) *bool { return &strength.HasSpecial },
		message: MessageNoSpecial,
	},
	{
		policy:     &commonPolicy{},
		flag:       func(strength *Strength) *bool { return &strength.NotCommon },
		message:    MessageTooCommon,
		suggestion: SuggestionUnique,
	},
}

type evaluator struct{}

func NewEvaluator() Evaluator {
	return &evaluator{}
}

func (e *evaluator) Evaluate(password string, email string) Result {
	return Evaluate(password, email)
}

func baseline() Result {
	return Result{
		Errors:      make([]string, 0),
		Suggestions: make([]string, 0),
	}
}

func Evaluate(password string, email string) Result {
	if password == "" {
		return baseline()
	}

	result := baseline()

	for _, r := range rules {
		satisfied := r.policy.Satisfied(password)
		*r.flag(&result.Strength) = satisfied
		if satisfied {
			continue
		}

		result.Errors = append(result.Errors, r.message)
		if r.suggestion != "" {
			result.Suggestions = append(result.Suggestions, r.suggestion)
		}
	}

	// depends on the email, so it is not part of the shared table
	if !(&emailPolicy{Email: email}).Satisfied(password) {
		result.Errors = append(result.Errors, MessageContainsEmail)
	}

	result.Score = score(password, result.Strength)
	result.IsValid = len(result.Errors) == 0 && result.Score >= ValidThreshold
	return result
}

func score(password string, strength Strength) int {
	points := 0

	if strength.Length {
		points++
	}
	if strength.HasUppercase && strength.HasLowercase {
		points++
	}
	if strength.HasNumber {
		points++
	}
	if strength.HasSpecial {
		points++
	}
	if utf8.RuneCountInString(password) >= BonusLength {
		points++
	}
	if !strength.NotCommon {
		points--
	}

	return max(0, min(points, MaxScore))
}
