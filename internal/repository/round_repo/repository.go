package round_repo

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/jackc/pgx/v5/pgxpool"

	"casino_client/internal/converter"
	"casino_client/internal/model"
	"casino_client/internal/repository"
)

const (
	table            = "rounds"
	colID            = "id"
	colGame          = "game"
	colBet           = "bet"
	colPayout        = "payout"
	colBalance       = "balance"
	colFreeSpinsLeft = "free_spins_left"
	colInFreeSpin    = "in_free_spin"
	colBoardValid    = "board_valid"
	colBoard         = "board"
	colPlayedAt      = "played_at"

	cascadeTable    = "round_cascades"
	colRoundID      = "round_id"
	colCascadeIndex = "cascade_index"
	colClusters     = "clusters"
	colStep         = "step"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type repo struct {
	dbc       *pgxpool.Pool
	txManager trm.Manager
	getter    *trmpgx.CtxGetter
}

func NewRoundRepository(dbc *pgxpool.Pool, txManager trm.Manager) repository.RoundRepository {
	return &repo{
		dbc:       dbc,
		txManager: txManager,
		getter:    trmpgx.DefaultCtxGetter,
	}
}

// Save - записывает раунд и его шаги каскада одной транзакцией
func (r *repo) Save(ctx context.Context, round model.Round) error {
	board, err := json.Marshal(round.Board)
	if err != nil {
		return err
	}
	steps := converter.FromCascadeSteps(round.Cascades)

	return r.txManager.Do(ctx, func(ctx context.Context) error {
		query := sq.Insert(table).
			Columns(colID, colGame, colBet, colPayout, colBalance, colFreeSpinsLeft,
				colInFreeSpin, colBoardValid, colBoard, colPlayedAt).
			Values(round.ID, round.Game, round.Bet, round.Payout, round.Balance, round.FreeSpinsLeft,
				round.InFreeSpin, round.BoardValid, string(board), round.PlayedAt).
			PlaceholderFormat(sq.Dollar)

		sqlStr, args, err := query.ToSql()
		if err != nil {
			return err
		}
		if _, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...); err != nil {
			return err
		}

		if len(steps) == 0 {
			return nil
		}

		// Все шаги одним INSERT
		stepsQuery := sq.Insert(cascadeTable).
			Columns(colRoundID, colCascadeIndex, colClusters, colPayout, colStep).
			PlaceholderFormat(sq.Dollar)
		for _, step := range steps {
			data, err := json.Marshal(step)
			if err != nil {
				return err
			}
			payout := 0
			for _, c := range step.Clusters {
				payout += c.Payout
			}
			stepsQuery = stepsQuery.Values(round.ID, step.CascadeIndex, len(step.Clusters), payout, string(data))
		}

		sqlStr, args, err = stepsQuery.ToSql()
		if err != nil {
			return err
		}
		_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
		return err
	})
}

// Totals - число раундов, сумма ставок (без фриспинов) и выплат по игре
func (r *repo) Totals(ctx context.Context, game string) (model.RoundTotals, error) {
	query := sq.Select(
		"COUNT(*)",
		"COALESCE(SUM("+colBet+") FILTER (WHERE NOT "+colInFreeSpin+"), 0)::BIGINT",
		"COALESCE(SUM("+colPayout+"), 0)::BIGINT",
	).
		From(table).
		Where(sq.Eq{colGame: game}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return model.RoundTotals{}, err
	}

	var totals model.RoundTotals
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&totals.Rounds, &totals.Bet, &totals.Payout)
	if err != nil {
		return model.RoundTotals{}, err
	}

	return totals, nil
}
