package expense

import (
	"context"
	"log/slog"
	"time"
)

// Gateway is the slice of the remote API this service needs. ListExpenses
// implementations normalize a not-found response to an empty slice, so the
// service never distinguishes "no records" from "collection missing".
type Gateway interface {
	CreateExpense(ctx context.Context, e *Expense) (*Expense, error)
	ListExpenses(ctx context.Context, userID string) ([]Expense, error)
	GetExpense(ctx context.Context, id string) (*Expense, error)
	DeleteExpense(ctx context.Context, id string) error
}

// Service orchestrates the gateway and the pure aggregation helpers for the
// dashboard and expense commands.
type Service struct {
	gateway Gateway
	logger  *slog.Logger
}

func NewService(gateway Gateway, logger *slog.Logger) *Service {
	return &Service{
		gateway: gateway,
		logger:  logger,
	}
}

// Create validates the form payload and submits a new record owned by userID.
// Creation and update stamps are written client-side, the backend stores them
// verbatim.
func (s *Service) Create(ctx context.Context, userID string, dto CreateExpenseDTO) (*Expense, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("expense validation failed", "error", err, "user_id", userID)
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	e := &Expense{
		Name:        dto.Name,
		Amount:      dto.Amount,
		Description: dto.Description,
		Date:        dto.Date,
		Category:    dto.Category,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.gateway.CreateExpense(ctx, e)
	if err != nil {
		s.logger.Error("failed to create expense", "error", err, "user_id", userID)
		return nil, err
	}

	s.logger.Info("expense created",
		"expense_id", created.ID,
		"user_id", userID,
		"amount", created.Amount.String(),
		"category", created.Category)
	return created, nil
}

// List fetches the user's expenses, optionally narrowed to one category.
// An empty category behaves like CategoryAll.
func (s *Service) List(ctx context.Context, userID, category string) ([]Expense, error) {
	expenses, err := s.gateway.ListExpenses(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list expenses", "error", err, "user_id", userID)
		return nil, err
	}
	if category == "" {
		category = CategoryAll
	}
	return FilterByCategory(expenses, category), nil
}

func (s *Service) Get(ctx context.Context, id string) (*Expense, error) {
	e, err := s.gateway.GetExpense(ctx, id)
	if err != nil {
		s.logger.Error("failed to get expense", "error", err, "expense_id", id)
		return nil, err
	}
	return e, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.gateway.DeleteExpense(ctx, id); err != nil {
		s.logger.Error("failed to delete expense", "error", err, "expense_id", id)
		return err
	}
	s.logger.Info("expense deleted", "expense_id", id)
	return nil
}

// Dashboard is what the dashboard command shows: the monthly overview plus
// the most recent activity.
type Dashboard struct {
	Overview Overview
	Recent   []Expense
}

func (s *Service) Dashboard(ctx context.Context, userID string, asOf time.Time) (*Dashboard, error) {
	expenses, err := s.gateway.ListExpenses(ctx, userID)
	if err != nil {
		s.logger.Error("failed to load dashboard", "error", err, "user_id", userID)
		return nil, err
	}

	return &Dashboard{
		Overview: Summarize(expenses, asOf),
		Recent:   RecentActivity(expenses, DefaultRecentLimit),
	}, nil
}
