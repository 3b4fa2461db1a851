package mediator

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/skycruzer/fleet-management-v2-sub013/utils"
)

var (
	ErrNoHandler            = errors.New("no handler registered")
	ErrResponseTypeMismatch = errors.New("response type mismatch")
	ErrNilRequest           = errors.New("request is nil")
)

type Mediator interface {
	Send(ctx context.Context, request any, requestType reflect.Type, responseType reflect.Type) (any, error)
}

type Next func() error

type HandlerFunc[TRequest any, TResponse any] func(ctx context.Context, request TRequest) (TResponse, error)

type BehaviourFunc[TRequest any] func(ctx context.Context, request TRequest, next Next) error

type route struct {
	responseType reflect.Type
	handle       func(ctx context.Context, request any) (any, error)
}

type behaviour struct {
	requestType reflect.Type
	wrap        func(ctx context.Context, request any, next Next) error
}

type mediator struct {
	routes     map[reflect.Type]route
	behaviours []behaviour
}

func NewMediator() *mediator {
	return &mediator{
		routes:     make(map[reflect.Type]route),
		behaviours: make([]behaviour, 0),
	}
}

// RequestName is the name requests are reported under in logs and metrics.
func RequestName(request any) string {
	requestType := reflect.TypeOf(request)
	if requestType == nil {
		return "<nil>"
	}

	for requestType.Kind() == reflect.Pointer {
		requestType = requestType.Elem()
	}
	return requestType.Name()
}

// RegisterHandler routes requests of type TRequest to handler. Registering a
// second handler for the same request type panics.
func RegisterHandler[TRequest any, TResponse any](m *mediator, handler HandlerFunc[TRequest, TResponse]) {
	requestType := utils.TypeOf[TRequest]()
	if _, exists := m.routes[requestType]; exists {
		panic(fmt.Sprintf("handler for %s already registered", requestType))
	}

	m.routes[requestType] = route{
		responseType: utils.TypeOf[TResponse](),
		handle: func(ctx context.Context, request any) (any, error) {
			return handler(ctx, request.(TRequest))
		},
	}
}

// RegisterBehaviour wraps every request assignable to TRequest. Use `any`
// to wrap all requests. Behaviours run in registration order.
func RegisterBehaviour[TRequest any](m *mediator, behaviourFunc BehaviourFunc[TRequest]) {
	m.behaviours = append(m.behaviours, behaviour{
		requestType: utils.TypeOf[TRequest](),
		wrap: func(ctx context.Context, request any, next Next) error {
			return behaviourFunc(ctx, request.(TRequest), next)
		},
	})
}

func Send[TResponse any](ctx context.Context, m Mediator, request any) (TResponse, error) {
	if request == nil {
		return utils.Zero[TResponse](), ErrNilRequest
	}

	response, err := m.Send(ctx, request, reflect.TypeOf(request), utils.TypeOf[TResponse]())
	if err != nil || response == nil {
		return utils.Zero[TResponse](), err
	}
	return response.(TResponse), nil
}

func (m *mediator) Send(ctx context.Context, request any, requestType reflect.Type, responseType reflect.Type) (any, error) {
	r, ok := m.routes[requestType]
	if !ok {
		return nil, fmt.Errorf("%s: %w", requestType, ErrNoHandler)
	}

	if r.responseType != responseType {
		return nil, fmt.Errorf("%s answers with %s, not %s: %w",
			requestType, r.responseType, responseType, ErrResponseTypeMismatch)
	}

	var response any
	err := m.pipeline(ctx, request, requestType, func() error {
		var handleErr error
		response, handleErr = r.handle(ctx, request)
		return handleErr
	})()
	if err != nil {
		return nil, err
	}

	return response, nil
}

// pipeline nests the matching behaviours around last, outermost first.
func (m *mediator) pipeline(ctx context.Context, request any, requestType reflect.Type, last Next) Next {
	step := last
	for i := len(m.behaviours) - 1; i >= 0; i-- {
		b := m.behaviours[i]
		if !requestType.AssignableTo(b.requestType) {
			continue
		}

		inner := step
		step = func() error {
			return b.wrap(ctx, request, inner)
		}
	}
	return step
}
