package orders

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/gatekeep/handler"
	"github.com/dmitrymomot/gatekeep/pkg/logger"
)

// OrderView is the JSON shape of a listed order.
type OrderView struct {
	ID       string `json:"_id"`
	Number   int    `json:"number"`
	Customer string `json:"customer"`
	Product  string `json:"product"`
}

type ListResponse struct {
	Orders []OrderView `json:"orders"`
}

type Service struct {
	repo         Repository
	guard        func(http.Handler) http.Handler
	errorHandler handler.ErrorHandler[handler.Context]
}

type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.errorHandler = handler.NewErrorHandler(l)
	}
}

// NewService serves the orders routes. guard must reject unauthenticated
// requests; the listing is never served without it.
func NewService(repo Repository, guard func(http.Handler) http.Handler, opts ...Option) *Service {
	s := &Service{
		repo:         repo,
		guard:        guard,
		errorHandler: handler.NewErrorHandler(logger.Discard()),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.Use(s.guard)
	r.Get("/", handler.Wrap(s.list,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))
	return r
}

func (s *Service) list(ctx handler.Context, _ struct{}) handler.Response {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return handler.Error(handler.ErrInternalServerError.Wrap(err))
	}

	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, OrderView{
			ID:       o.ID.Hex(),
			Number:   o.Number,
			Customer: o.Customer,
			Product:  o.Product,
		})
	}
	return handler.JSON(ListResponse{Orders: views})
}
