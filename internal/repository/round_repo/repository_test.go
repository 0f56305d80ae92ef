package round_repo

import (
	"context"
	"os"
	"testing"
	"time"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"casino_client/internal/converter"
	"casino_client/internal/model"
	"casino_client/internal/repository/schema"
)

// Тест ходит в настоящий Postgres и запускается только с PG_DSN
func newTestRepo(t *testing.T) *repo {
	t.Helper()

	dsn := os.Getenv("PG_DSN")
	if dsn == "" {
		t.Skip("PG_DSN not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("pgxpool.New: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := schema.Apply(ctx, pool); err != nil {
		t.Fatalf("schema.Apply: %v", err)
	}
	m, err := manager.New(trmpgx.NewDefaultFactory(pool))
	if err != nil {
		t.Fatalf("manager.New: %v", err)
	}
	return NewRoundRepository(pool, m).(*repo)
}

func TestSaveAndTotals(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	// Отдельная игра на каждый запуск, чтобы суммы не смешивались
	game := "test-" + uuid.NewString()[:8]

	board := model.DefaultCascadeBoard()
	steps := []model.CascadeStep{{
		Index: 0,
		Clusters: []model.Cluster{{
			Symbol: model.Sym2,
			Cells:  []model.Position{{Row: 6, Col: 0}},
			Count:  1,
			Payout: 15,
		}},
		NewSymbols: []model.NewSymbol{{Position: model.Position{Row: 0, Col: 0}, Symbol: model.Sym3}},
	}}

	rounds := []model.Round{
		{ID: uuid.NewString(), Game: game, Bet: 20, Payout: 15, Balance: 9995, BoardValid: true,
			Board: converter.FromCascadeBoard(board), Cascades: steps, PlayedAt: time.Now()},
		{ID: uuid.NewString(), Game: game, Bet: 20, Payout: 40, Balance: 10035, InFreeSpin: true,
			FreeSpinsLeft: 9, BoardValid: false, PlayedAt: time.Now()},
	}
	for _, round := range rounds {
		if err := r.Save(ctx, round); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	totals, err := r.Totals(ctx, game)
	if err != nil {
		t.Fatalf("Totals: %v", err)
	}
	want := model.RoundTotals{Rounds: 2, Bet: 20, Payout: 55}
	if totals != want {
		t.Fatalf("totals = %+v, want %+v", totals, want)
	}

	var stored int
	err = r.dbc.QueryRow(ctx, "SELECT COUNT(*) FROM round_cascades WHERE round_id = $1", rounds[0].ID).Scan(&stored)
	if err != nil {
		t.Fatalf("count cascades: %v", err)
	}
	if stored != 1 {
		t.Fatalf("stored cascades = %d, want 1", stored)
	}

	// Повторный id откатывает всю транзакцию
	if err := r.Save(ctx, rounds[0]); err == nil {
		t.Fatalf("duplicate round saved")
	}
	if totals, _ := r.Totals(ctx, game); totals.Rounds != 2 {
		t.Fatalf("rounds after failed save = %d", totals.Rounds)
	}
}
