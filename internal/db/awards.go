package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	model "github.com/njitshpe/shpe-app-sub005/internal/models"
	"go.uber.org/zap"
)

// Awards ledger, audit log and profiles in postgres.
// The unique index awards_user_event_reason (see scripts/rewards.sql) is the
// idempotency authority, the application-level check is only an early exit.
type RewardsDB struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewRewardsDB(logger *zap.Logger) (db *RewardsDB, err error) {
	// config
	purl := os.Getenv("REWARDS_DB")
	if purl == "" {
		return nil, fmt.Errorf("env REWARDS_DB is not set")
	}
	port := os.Getenv("REWARDS_DB_PORT")
	if port == "" {
		return nil, fmt.Errorf("env REWARDS_DB_PORT is not set")
	}
	user := os.Getenv("REWARDS_DB_USER")
	if user == "" {
		return nil, fmt.Errorf("env REWARDS_DB_USER is not set")
	}
	password := os.Getenv("REWARDS_DB_PASSWORD")
	if password == "" {
		return nil, fmt.Errorf("env REWARDS_DB_PASSWORD is not set")
	}
	database := os.Getenv("REWARDS_DB_BASE")
	if database == "" {
		return nil, fmt.Errorf("env REWARDS_DB_BASE is not set")
	}
	dsn := "postgres://" + user + ":" + password + "@" + purl + ":" + port + "/" + database

	pool, err := pgxpool.New(context.Background(), dsn)
	return &RewardsDB{pool, logger}, err
}

// Duplicate check for (user, event, reason)
func (p *RewardsDB) AwardExists(ctx context.Context, userID string, eventID string, reason string) (bool, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return false, err
	}
	defer conn.Release()

	sql, args, err := sq.Select("1").
		From("awards").
		Where(sq.Eq{"userid": userID}).
		Where(sq.Eq{"eventid": eventID}).
		Where(sq.Eq{"reason": reason}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, err
	}

	var one int
	err = conn.QueryRow(ctx, sql, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Append-only award insert. A unique violation from a concurrent identical
// request surfaces as model.ErrDuplicate.
func (p *RewardsDB) AwardCreate(ctx context.Context, tnx model.AwardTransaction) (model.AwardTransaction, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return model.AwardTransaction{}, err
	}
	defer conn.Release()

	tnx.UUID = uuid.New()
	tnx.CreatedAt = time.Now().UTC()

	var event any
	if tnx.EventID != "" {
		event = tnx.EventID
	}
	meta, err := json.Marshal(tnx.Metadata)
	if err != nil {
		return model.AwardTransaction{}, err
	}

	sql, args, err := sq.Insert("awards").
		Columns("id", "userid", "eventid", "amount", "reason", "metadata", "createdat").
		Values(tnx.UUID, tnx.UserID, event, tnx.Amount, tnx.Reason, meta, tnx.CreatedAt).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		p.logger.Error("SQL error",
			zap.Error(err),
			zap.String("query", sql),
			zap.Any("args", args),
		)
		return model.AwardTransaction{}, err
	}

	_, err = conn.Exec(ctx, sql, args...)
	if err != nil {
		var pgerr *pgconn.PgError
		if errors.As(err, &pgerr) && pgerr.Code == "23505" {
			return model.AwardTransaction{}, fmt.Errorf("award %w", model.ErrDuplicate)
		}
		p.logger.Error("SQL error",
			zap.Error(err),
			zap.String("query", sql),
			zap.Any("args", args),
		)
		return model.AwardTransaction{}, err
	}
	return tnx, nil
}

func (p *RewardsDB) AuditCreate(ctx context.Context, rec model.AuditRecord) error {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	meta, err := json.Marshal(rec.Metadata)
	if err != nil {
		return err
	}

	sql, args, err := sq.Insert("award_audit").
		Columns("id", "userid", "actiontype", "pointsdelta", "previouspoints", "newpoints",
			"previousrank", "newrank", "rankchanged", "metadata", "createdat").
		Values(uuid.New(), rec.UserID, rec.ActionType, rec.PointsDelta, rec.PreviousPoints, rec.NewPoints,
			string(rec.PreviousRank), string(rec.NewRank), rec.RankChanged, meta, time.Now().UTC()).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = conn.Exec(ctx, sql, args...)
	return err
}

func (p *RewardsDB) GetAwards(ctx context.Context, userID string, from time.Time, to time.Time) (tnxs []model.AwardTransaction, err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	sql, args, err := sq.Select("id", "userid", "eventid", "amount", "reason", "metadata", "createdat").
		From("awards").
		Where(sq.Eq{"userid": userID}).
		Where(sq.GtOrEq{"createdat": from}).
		Where(sq.LtOrEq{"createdat": to}).
		OrderBy("createdat").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var tnx model.AwardTransaction
		var event pgtype.Text
		var meta []byte
		err = rows.Scan(&tnx.UUID, &tnx.UserID, &event, &tnx.Amount, &tnx.Reason, &meta, &tnx.CreatedAt)
		if err != nil {
			return nil, err
		}
		tnx.EventID = event.String
		if len(meta) > 0 {
			if err := json.Unmarshal(meta, &tnx.Metadata); err != nil {
				return nil, err
			}
		}
		tnxs = append(tnxs, tnx)
	}
	return tnxs, nil
}

// Profile read, auto-created at zero on first contact
func (p *RewardsDB) GetProfile(ctx context.Context, userID string) (model.Profile, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return model.Profile{}, err
	}
	defer conn.Release()

	var profile model.Profile
	profile.UserID = userID
	var rank string
	row := conn.QueryRow(ctx, "SELECT rank_points, rank FROM profiles WHERE userid = $1", userID)
	err = row.Scan(&profile.RankPoints, &rank)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return p.profileCreate(ctx, userID)
		}
		return model.Profile{}, err
	}
	profile.Rank = model.Rank(rank)
	return profile, nil
}

func (p *RewardsDB) profileCreate(ctx context.Context, userID string) (model.Profile, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return model.Profile{}, err
	}
	defer conn.Release()

	// concurrent first award for the same user may get here twice
	_, err = conn.Exec(ctx,
		"INSERT INTO profiles (userid, rank_points, rank) VALUES ($1, 0, $2) ON CONFLICT (userid) DO NOTHING",
		userID, string(model.RankUnranked))
	if err != nil {
		return model.Profile{}, err
	}
	return model.Profile{UserID: userID, RankPoints: 0, Rank: model.RankUnranked}, nil
}

// Saturating atomic increment. Points never pass 100 and the rank is
// recomputed from the post-increment value inside the same transaction,
// so concurrent awards for one user cannot lose updates.
func (p *RewardsDB) ProfileApplyDelta(ctx context.Context, userID string, delta int, rankAffecting bool) (model.Profile, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return model.Profile{}, err
	}
	defer conn.Release()

	tx, err := conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return model.Profile{}, err
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()

	var profile model.Profile
	profile.UserID = userID
	var rank string
	row := tx.QueryRow(ctx,
		"UPDATE profiles SET rank_points = LEAST(rank_points + $1, 100) WHERE userid = $2 RETURNING rank_points, rank",
		delta, userID)
	err = row.Scan(&profile.RankPoints, &rank)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf("profile %s %w", userID, model.ErrNotFound)
		}
		return model.Profile{}, err
	}
	profile.Rank = model.Rank(rank)

	// rank moves only when the action is allowed to affect it
	if rankAffecting {
		newRank := model.CalculateRank(profile.RankPoints)
		if newRank != profile.Rank {
			sql, args, serr := sq.Update("profiles").
				Set("rank", string(newRank)).
				Where(sq.Eq{"userid": userID}).
				PlaceholderFormat(sq.Dollar).
				ToSql()
			if serr != nil {
				err = serr
				return model.Profile{}, err
			}
			_, err = tx.Exec(ctx, sql, args...)
			if err != nil {
				return model.Profile{}, err
			}
			profile.Rank = newRank
		}
	}

	err = tx.Commit(ctx)
	if err != nil {
		return model.Profile{}, err
	}
	return profile, nil
}

// Event existence, the events subsystem owns the table
func (p *RewardsDB) EventExists(ctx context.Context, eventID string) (bool, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return false, err
	}
	defer conn.Release()

	var one int
	err = conn.QueryRow(ctx, "SELECT 1 FROM events WHERE id = $1", eventID).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Prior check-in for user+event, written by the attendance flow
func (p *RewardsDB) HasCheckin(ctx context.Context, userID string, eventID string) (bool, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return false, err
	}
	defer conn.Release()

	var one int
	err = conn.QueryRow(ctx, "SELECT 1 FROM checkins WHERE userid = $1 AND eventid = $2", userID, eventID).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (p *RewardsDB) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}
