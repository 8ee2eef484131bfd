package postgres_test

import (
	"context"
	"errors"
	"testing"

	"toolrental-backend/internal/domain"
	"toolrental-backend/internal/repository"
	"toolrental-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestCatalog_ToolByCode(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	catalog := postgres.NewCatalog(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"code", "tool_type", "brand"}).
			AddRow("JAKR", "Jackhammer", "Ridgid")

		mock.ExpectQuery("SELECT (.+) FROM tools WHERE code = \\$1").
			WithArgs("JAKR").
			WillReturnRows(rows)

		tool, err := catalog.ToolByCode(ctx, "JAKR")
		assert.NoError(t, err)
		assert.NotNil(t, tool)
		assert.Equal(t, "JAKR", tool.Code)
		assert.Equal(t, domain.ToolTypeJackhammer, tool.Type)
		assert.Equal(t, "Ridgid", tool.Brand)
	})

	t.Run("Unknown type string maps to OTHER", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"code", "tool_type", "brand"}).
			AddRow("EXCA", "Excavator", "Caterpillar")

		mock.ExpectQuery("SELECT (.+) FROM tools WHERE code = \\$1").
			WithArgs("EXCA").
			WillReturnRows(rows)

		tool, err := catalog.ToolByCode(ctx, "EXCA")
		assert.NoError(t, err)
		assert.Equal(t, domain.ToolTypeOther, tool.Type)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM tools WHERE code = \\$1").
			WithArgs("NOPE").
			WillReturnRows(sqlmock.NewRows([]string{"code", "tool_type", "brand"}))

		_, err := catalog.ToolByCode(ctx, "NOPE")
		assert.True(t, errors.Is(err, repository.ErrNotFound))
	})
}

func TestCatalog_PricingPolicyByType(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	catalog := postgres.NewCatalog(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"tool_type", "daily_charge_cents", "weekday_charge", "weekend_charge", "holiday_charge"}).
			AddRow("JACKHAMMER", 299, true, false, false)

		mock.ExpectQuery("SELECT (.+) FROM pricing_policies WHERE tool_type = \\$1").
			WithArgs("JACKHAMMER").
			WillReturnRows(rows)

		policy, err := catalog.PricingPolicyByType(ctx, domain.ToolTypeJackhammer)
		assert.NoError(t, err)
		assert.Equal(t, domain.ToolTypeJackhammer, policy.ToolType)
		assert.Equal(t, int64(299), policy.DailyChargeCents)
		assert.True(t, policy.WeekdayChargeable)
		assert.False(t, policy.WeekendChargeable)
		assert.False(t, policy.HolidayChargeable)
	})

	t.Run("Missing policy", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM pricing_policies WHERE tool_type = \\$1").
			WithArgs("OTHER").
			WillReturnRows(sqlmock.NewRows([]string{"tool_type", "daily_charge_cents", "weekday_charge", "weekend_charge", "holiday_charge"}))

		_, err := catalog.PricingPolicyByType(ctx, domain.ToolTypeOther)
		assert.True(t, errors.Is(err, repository.ErrNotFound))
	})
}
