package stubserver

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Seed inserts a demo account with a spread of expenses when the database is
// empty. The password is stored plaintext, same as the real backend.
func (s *Server) Seed() error {
	var count int64
	if err := s.db.Model(&userRow{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		s.logger.Info("seed skipped, database not empty")
		return nil
	}

	now := time.Now().UTC()
	demo := &userRow{
		ID:        uuid.NewString(),
		FirstName: "Demo",
		LastName:  "Account",
		Username:  "demo@fintrack.app",
		Password:  "password123",
		CreatedAt: now.Format(time.RFC3339),
	}
	if err := s.db.Create(demo).Error; err != nil {
		return fmt.Errorf("failed to seed user: %w", err)
	}

	samples := []struct {
		name     string
		cents    int64
		category string
		daysAgo  int
		desc     string
	}{
		{"Groceries", 5423, "food", 2, "weekly shop"},
		{"Bus pass", 2500, "transportation", 5, ""},
		{"Electricity", 8990, "utilities", 12, "monthly bill"},
		{"Cinema", 1800, "entertainment", 20, ""},
		{"Rent", 95000, "housing", 35, ""},
		{"Pharmacy", 1250, "health", 40, ""},
	}

	for _, sample := range samples {
		day := now.AddDate(0, 0, -sample.daysAgo)
		row := &expenseRow{
			ID:          uuid.NewString(),
			Name:        sample.name,
			AmountCents: sample.cents,
			Description: sample.desc,
			Date:        day.Format("2006-01-02"),
			Category:    sample.category,
			UserID:      demo.ID,
			CreatedAt:   now.Format(time.RFC3339),
			UpdatedAt:   now.Format(time.RFC3339),
		}
		if err := s.db.Create(row).Error; err != nil {
			return fmt.Errorf("failed to seed expense %q: %w", sample.name, err)
		}
	}

	s.logger.Info("seeded demo data", "username", demo.Username, "expenses", len(samples))
	return nil
}
