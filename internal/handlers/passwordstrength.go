package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/The127/ioc"
	"github.com/skycruzer/fleet-management-v2-sub013/internal/middlewares"
	"github.com/skycruzer/fleet-management-v2-sub013/internal/password"
	"github.com/skycruzer/fleet-management-v2-sub013/internal/queries"
	"github.com/skycruzer/fleet-management-v2-sub013/mediator"
	"github.com/skycruzer/fleet-management-v2-sub013/utils"
)

type EvaluatePasswordRequestDto struct {
	Password string `json:"password" validate:"max=4096"`
	Email    string `json:"email" validate:"omitempty,max=320"`
}

type PasswordStrengthDto struct {
	Length       bool `json:"length"`
	HasUppercase bool `json:"hasUppercase"`
	HasLowercase bool `json:"hasLowercase"`
	HasNumber    bool `json:"hasNumber"`
	HasSpecial   bool `json:"hasSpecial"`
	NotCommon    bool `json:"notCommon"`
}

type EvaluatePasswordResponseDto struct {
	IsValid     bool                `json:"isValid"`
	Score       int                 `json:"score"`
	Label       string              `json:"label"`
	Color       string              `json:"color"`
	Errors      []string            `json:"errors"`
	Suggestions []string            `json:"suggestions"`
	Strength    PasswordStrengthDto `json:"strength"`
	EntropyBits float64             `json:"entropyBits"`
}

type StrengthLevelDto struct {
	Score int    `json:"score"`
	Label string `json:"label"`
	Color string `json:"color"`
}

type ListStrengthLevelsResponseDto struct {
	Items []StrengthLevelDto `json:"items"`
}

func decodeEvaluatePasswordRequest(r *http.Request) (EvaluatePasswordRequestDto, error) {
	var requestDto EvaluatePasswordRequestDto
	err := json.NewDecoder(r.Body).Decode(&requestDto)
	if err != nil {
		return requestDto, fmt.Errorf("decoding request: %s: %w", err.Error(), utils.ErrHttpBadRequest)
	}

	err = utils.ValidateDto(requestDto)
	if err != nil {
		return requestDto, err
	}

	return requestDto, nil
}

// EvaluatePassword
// @summary     Evaluate password strength
// @description Scores a candidate password against the account email and lists what is missing.
// @tags        Password strength
// @accept      application/json
// @produce     application/json
// @param       request  body   EvaluatePasswordRequestDto  true  "Password and account email"
// @param       truncate query  bool  false  "Limit errors to the display limit"
// @success     200 {object} EvaluatePasswordResponseDto
// @failure     400  {object}  utils.ErrorResponseDto
// @router      /api/password-strength [post]
func EvaluatePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	requestDto, err := decodeEvaluatePasswordRequest(r)
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	truncate, _ := strconv.ParseBool(r.URL.Query().Get("truncate"))

	scope := middlewares.GetScope(ctx)
	m := ioc.GetDependency[mediator.Mediator](scope)

	evaluation, err := mediator.Send[*queries.EvaluatePasswordResponse](ctx, m, queries.EvaluatePassword{
		Password: requestDto.Password,
		Email:    requestDto.Email,
		Truncate: truncate,
	})
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	response := EvaluatePasswordResponseDto{
		IsValid:     evaluation.Result.IsValid,
		Score:       evaluation.Result.Score,
		Label:       evaluation.Label,
		Color:       evaluation.Color,
		Errors:      utils.EmptyIfNil(evaluation.Result.Errors),
		Suggestions: utils.EmptyIfNil(evaluation.Result.Suggestions),
		Strength:    PasswordStrengthDto(evaluation.Result.Strength),
		EntropyBits: evaluation.EntropyBits,
	}

	w.Header().Set("Content-Type", "application/json")

	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}
}

// VerifyPassword
// @summary     Verify password
// @description Gate for form submission: succeeds only when the password is valid.
// @tags        Password strength
// @accept      application/json
// @param       request  body   EvaluatePasswordRequestDto  true  "Password and account email"
// @success     204
// @failure     400  {object}  utils.ErrorResponseDto
// @router      /api/password-strength/verify [post]
func VerifyPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	requestDto, err := decodeEvaluatePasswordRequest(r)
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	scope := middlewares.GetScope(ctx)
	m := ioc.GetDependency[mediator.Mediator](scope)

	evaluation, err := mediator.Send[*queries.EvaluatePasswordResponse](ctx, m, queries.EvaluatePassword{
		Password: requestDto.Password,
		Email:    requestDto.Email,
	})
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	if !evaluation.Result.IsValid {
		utils.HandleHttpError(w, rejection(evaluation.Result))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func rejection(result password.Result) error {
	if err := result.Err(); err != nil {
		return fmt.Errorf("%w: %w", utils.ErrPasswordRejected, err)
	}

	return fmt.Errorf("%w: strength %q is below %q",
		utils.ErrPasswordRejected,
		result.Label(),
		password.Label(password.ValidThreshold))
}

// ListStrengthLevels
// @summary     List strength levels
// @description Score to label and color mapping used to render the strength meter.
// @tags        Password strength
// @produce     application/json
// @success     200 {object} ListStrengthLevelsResponseDto
// @router      /api/password-strength/levels [get]
func ListStrengthLevels(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	scope := middlewares.GetScope(ctx)
	m := ioc.GetDependency[mediator.Mediator](scope)

	levels, err := mediator.Send[*queries.ListStrengthLevelsResponse](ctx, m, queries.ListStrengthLevels{})
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}

	response := ListStrengthLevelsResponseDto{
		Items: utils.MapSlice(levels.Items, func(level password.Level) StrengthLevelDto {
			return StrengthLevelDto{
				Score: level.Score,
				Label: level.Label,
				Color: level.Color,
			}
		}),
	}

	w.Header().Set("Content-Type", "application/json")

	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		utils.HandleHttpError(w, err)
		return
	}
}
