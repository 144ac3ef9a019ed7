package expense_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/fintrack/internal"
	"github.com/frahmantamala/fintrack/internal/core"
	"github.com/frahmantamala/fintrack/internal/expense"
)

// mockGateway implements expense.Gateway in memory
type mockGateway struct {
	expenses  []expense.Expense
	listErr   error
	createErr error
	deleted   []string
}

func newMockGateway() *mockGateway {
	return &mockGateway{}
}

func (m *mockGateway) CreateExpense(_ context.Context, e *expense.Expense) (*expense.Expense, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	created := *e
	created.ID = "exp-1"
	m.expenses = append(m.expenses, created)
	return &created, nil
}

func (m *mockGateway) ListExpenses(_ context.Context, userID string) ([]expense.Expense, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []expense.Expense
	for _, e := range m.expenses {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	if out == nil {
		out = []expense.Expense{}
	}
	return out, nil
}

func (m *mockGateway) GetExpense(_ context.Context, id string) (*expense.Expense, error) {
	for _, e := range m.expenses {
		if e.ID == id {
			found := e
			return &found, nil
		}
	}
	return nil, internal.ErrExpenseNotFound
}

func (m *mockGateway) DeleteExpense(_ context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	return nil
}

var _ = Describe("ExpenseService", func() {
	var (
		svc     *expense.Service
		gateway *mockGateway
		ctx     context.Context
	)

	BeforeEach(func() {
		gateway = newMockGateway()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		svc = expense.NewService(gateway, logger)
		ctx = context.Background()
	})

	Describe("Create", func() {
		It("submits a validated record with client-side timestamps", func() {
			dto := expense.CreateExpenseDTO{
				Name:     "Groceries",
				Amount:   5423,
				Category: "food",
				Date:     "2025-06-15",
			}

			created, err := svc.Create(ctx, "user-1", dto)
			Expect(err).ToNot(HaveOccurred())
			Expect(created.ID).To(Equal("exp-1"))
			Expect(created.UserID).To(Equal("user-1"))
			Expect(created.CreatedAt).ToNot(BeEmpty())
			Expect(created.UpdatedAt).To(Equal(created.CreatedAt))
		})

		It("rejects a non-positive amount before touching the gateway", func() {
			dto := expense.CreateExpenseDTO{
				Name:     "Groceries",
				Amount:   0,
				Category: "food",
				Date:     "2025-06-15",
			}

			created, err := svc.Create(ctx, "user-1", dto)
			Expect(created).To(BeNil())
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeInvalidAmount))
			Expect(gateway.expenses).To(BeEmpty())
		})

		It("rejects a category outside the fixed set", func() {
			dto := expense.CreateExpenseDTO{
				Name:     "Groceries",
				Amount:   100,
				Category: "groceries",
				Date:     "2025-06-15",
			}

			_, err := svc.Create(ctx, "user-1", dto)
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeInvalidCategory))
		})

		It("rejects an unparseable date", func() {
			dto := expense.CreateExpenseDTO{
				Name:     "Groceries",
				Amount:   100,
				Category: "food",
				Date:     "15/06/2025",
			}

			_, err := svc.Create(ctx, "user-1", dto)
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeInvalidDate))
		})

		It("passes gateway failures through", func() {
			gateway.createErr = errors.New("boom")
			dto := expense.CreateExpenseDTO{
				Name:     "Groceries",
				Amount:   100,
				Category: "food",
				Date:     "2025-06-15",
			}

			_, err := svc.Create(ctx, "user-1", dto)
			Expect(err).To(MatchError("boom"))
		})
	})

	Describe("List", func() {
		BeforeEach(func() {
			gateway.expenses = []expense.Expense{
				makeExpense("1", 100, "2025-06-01", "food"),
				makeExpense("2", 200, "2025-06-02", "travel"),
				makeExpense("3", 300, "2025-06-03", "food"),
			}
		})

		It("returns everything for an empty category", func() {
			out, err := svc.List(ctx, "user-1", "")
			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(HaveLen(3))
		})

		It("filters by category", func() {
			out, err := svc.List(ctx, "user-1", "travel")
			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(HaveLen(1))
			Expect(out[0].ID).To(Equal("2"))
		})
	})

	Describe("Dashboard", func() {
		It("combines the overview with the recent feed", func() {
			gateway.expenses = []expense.Expense{
				makeExpense("1", 5000, "2025-06-15", "food"),
				makeExpense("2", 2000, "2025-05-20", "travel"),
				makeExpense("3", 1000, "2025-04-01", "food"),
			}
			asOf := time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)

			d, err := svc.Dashboard(ctx, "user-1", asOf)
			Expect(err).ToNot(HaveOccurred())
			Expect(d.Overview.Total).To(Equal(core.Cents(8000)))
			Expect(d.Recent).To(HaveLen(3))
			Expect(d.Recent[0].ID).To(Equal("1"))
		})

		It("propagates gateway failures", func() {
			gateway.listErr = errors.New("gateway down")

			_, err := svc.Dashboard(ctx, "user-1", time.Now())
			Expect(err).To(MatchError("gateway down"))
		})
	})
})
