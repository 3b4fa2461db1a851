package queries

import (
	"context"

	"github.com/The127/ioc"
	"github.com/skycruzer/fleet-management-v2-sub013/internal/config"
	"github.com/skycruzer/fleet-management-v2-sub013/internal/metrics"
	"github.com/skycruzer/fleet-management-v2-sub013/internal/middlewares"
	"github.com/skycruzer/fleet-management-v2-sub013/internal/password"
	passwordvalidator "github.com/wagslane/go-password-validator"
)

type EvaluatePassword struct {
	Password string
	Email    string
	// Truncate limits the errors to the configured display limit.
	Truncate bool
}

type EvaluatePasswordResponse struct {
	Result      password.Result
	Label       string
	Color       string
	EntropyBits float64
}

func HandleEvaluatePassword(ctx context.Context, query EvaluatePassword) (*EvaluatePasswordResponse, error) {
	scope := middlewares.GetScope(ctx)
	evaluator := ioc.GetDependency[password.CachedEvaluator](scope)

	result := evaluator.Evaluate(ctx, query.Password, query.Email)
	metrics.RecordEvaluation(result.Label(), result.IsValid)

	if limit := config.C.Password.MaxDisplayedErrors; query.Truncate && limit > 0 {
		result = result.Truncated(limit)
	}

	return &EvaluatePasswordResponse{
		Result:      result,
		Label:       result.Label(),
		Color:       result.Color(),
		EntropyBits: passwordvalidator.GetEntropy(query.Password),
	}, nil
}
