package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"frameshop/internal/storage"
	"frameshop/internal/storage/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"testing"
)

var testDB *sql.DB

// Интеграционные тесты идут только с TEST_MYSQL_DSN, например
// root:@tcp(localhost:3306)/frameshop_test?parseTime=true
func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_MYSQL_DSN")
	if dsn != "" {
		var err error
		testDB, err = sql.Open("mysql", dsn)
		if err != nil {
			panic(fmt.Errorf("не удалось подключиться к тестовой БД: %w", err))
		}

		if err := testDB.Ping(); err != nil {
			panic(fmt.Errorf("ping failed: %w", err))
		}

		if err := migrations.Up(testDB); err != nil {
			panic(err)
		}
	}

	code := m.Run()

	if testDB != nil {
		testDB.Close()
	}

	os.Exit(code)
}

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	if testDB == nil {
		t.Skip("TEST_MYSQL_DSN not set")
	}

	cleanupTestDB(t)

	return &Storage{db: testDB}
}

func cleanupTestDB(t *testing.T) {
	tables := []string{"production_cost_config", "stretcher_bar_stock", "crossbar_stock", "cardboard_stock"}
	for _, table := range tables {
		_, err := testDB.Exec("DELETE FROM " + table)
		require.NoError(t, err)
	}
}

func testConfig(markup float64) storage.ProductionCostConfig {
	return storage.ProductionCostConfig{
		StretcherThinPricePerMeter:  10,
		StretcherThickPricePerMeter: 15,
		CrossbarPricePerMeter:       12,
		CanvasPricePerM2:            20,
		InternalPrintingPricePerM2:  30,
		ExternalPrintingPricePerM2:  50,
		FramingPrice:                5,
		HookPrice:                   1,
		CardboardPrice:              3,
		WholesaleMarkupPercent:      markup,
		MarginPercent:               20,
		PrinterPurchaseCost:         12000,
		PrinterMonthlyUpkeep:        100,
		PrinterLifespanMonths:       24,
	}
}

func TestStorage_GetActiveCostConfig_NotFound(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.GetActiveCostConfig(context.Background())
	assert.True(t, errors.Is(err, storage.ErrCostConfigNotFound))
}

func TestStorage_UpdateCostConfigAdmin_KeepsSingleActive(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	_, err := s.UpdateCostConfigAdmin(ctx, testConfig(40))
	require.NoError(t, err)
	id, err := s.UpdateCostConfigAdmin(ctx, testConfig(55))
	require.NoError(t, err)

	cfg, err := s.GetActiveCostConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, id, cfg.ID)
	assert.Equal(t, 55.0, cfg.WholesaleMarkupPercent)
	assert.True(t, cfg.IsActive)

	var active int
	require.NoError(t, testDB.QueryRow(`SELECT COUNT(*) FROM production_cost_config WHERE is_active = TRUE`).Scan(&active))
	assert.Equal(t, 1, active)
}

func TestStorage_UpdateCostConfigAdmin_Invalid(t *testing.T) {
	s := newTestStorage(t)

	cfg := testConfig(40)
	cfg.PrinterLifespanMonths = 0

	_, err := s.UpdateCostConfigAdmin(context.Background(), cfg)
	assert.ErrorIs(t, err, storage.ErrInvalidCostConfig)
}

func TestStorage_StockRoundTrip(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.UpdateStretcherStockAdmin(ctx, []storage.StretcherBarStock{
		{Length: 100, Type: "thick", Stock: 2},
		{Length: 150, Type: "thick", Stock: 4},
	}))
	require.NoError(t, s.UpdateStretcherStockAdmin(ctx, []storage.StretcherBarStock{
		{Length: 100, Type: "thick", Stock: 7},
	}))
	require.NoError(t, s.UpdateCrossbarStockAdmin(ctx, []storage.CrossbarStock{{Length: 100, Stock: 1}}))

	stretchers, err := s.ListStretcherStock(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []storage.StretcherBarStock{
		{Length: 100, Type: "thick", Stock: 7},
		{Length: 150, Type: "thick", Stock: 4},
	}, stretchers)

	crossbars, err := s.ListCrossbarStock(ctx)
	require.NoError(t, err)
	assert.Equal(t, []storage.CrossbarStock{{Length: 100, Stock: 1}}, crossbars)
}

func TestStorage_ListCardboardStock(t *testing.T) {
	s := newTestStorage(t)

	_, err := testDB.Exec(`INSERT INTO cardboard_stock (width, height, stock, price) VALUES (160, 110, 2, 7), (70, 50, 10, 2)`)
	require.NoError(t, err)

	stock, err := s.ListCardboardStock(context.Background())
	require.NoError(t, err)
	require.Len(t, stock, 2)
	assert.Equal(t, 70, stock[0].Width)
	assert.Equal(t, 7.0, stock[1].Price)
}

func TestStorage_CreateCardboardStockAdmin(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	id, err := s.CreateCardboardStockAdmin(ctx, storage.CardboardStock{Width: 90, Height: 60, Stock: 3, Price: 4})
	require.NoError(t, err)
	assert.Positive(t, id)

	_, err = s.CreateCardboardStockAdmin(ctx, storage.CardboardStock{Width: 90, Height: 60, Stock: 1, Price: 4})
	assert.ErrorIs(t, err, storage.ErrCardboardExists)

	_, err = s.CreateCardboardStockAdmin(ctx, storage.CardboardStock{Width: 0, Height: 60})
	assert.ErrorIs(t, err, storage.ErrInvalidStockItem)
}
