package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/khelsetu/arena/internal/domain/result"
	qb "github.com/khelsetu/arena/internal/platform/querybuilder"
	"github.com/lib/pq"
)

type ResultRepository struct {
	db *sqlx.DB
}

var resultSelectColumns = []string{
	"id",
	"athlete_id",
	"exercise",
	"score",
	"feedback",
	"corrections",
	"reps",
	"jump_height_cm",
	"jump_displacement_norm",
	"turns",
	"split_times",
	"cadence",
	"trunk_angle_avg",
	"trunk_angle_min",
	"trunk_angle_max",
	"distance_km",
	"duration_sec",
	"pace_min_per_km",
	"video_url",
	"created_at",
}

func NewResultRepository(db *sqlx.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

func (r *ResultRepository) ListAll(ctx context.Context) ([]result.Record, error) {
	query, args, err := qb.Select(resultSelectColumns...).From("results").
		OrderBy("created_at DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select results query: %w", err)
	}

	var rows []resultTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select results: %w", err)
	}

	return resultRowsToRecords(rows), nil
}

func (r *ResultRepository) ListByAthlete(ctx context.Context, athleteID string) ([]result.Record, error) {
	query, args, err := qb.Select(resultSelectColumns...).From("results").
		Where(qb.Eq("athlete_id", athleteID)).
		OrderBy("created_at DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select results by athlete query: %w", err)
	}

	var rows []resultTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select results by athlete: %w", err)
	}

	return resultRowsToRecords(rows), nil
}

func (r *ResultRepository) Create(ctx context.Context, record result.Record) (result.Record, error) {
	insertModel := resultInsertModel{
		ID:                   record.ID,
		AthleteID:            record.AthleteID,
		Exercise:             record.Exercise,
		Score:                record.Score,
		Feedback:             pq.StringArray(record.Feedback),
		Corrections:          pq.StringArray(record.Corrections),
		Reps:                 intPtrToNull(record.Reps),
		JumpHeightCm:         floatPtrToNull(record.JumpHeightCm),
		JumpDisplacementNorm: floatPtrToNull(record.JumpDisplacementNorm),
		Turns:                intPtrToNull(record.Turns),
		SplitTimes:           pq.Float64Array(record.SplitTimes),
		Cadence:              floatPtrToNull(record.Cadence),
		TrunkAngleAvg:        floatPtrToNull(record.TrunkAngleAvg),
		TrunkAngleMin:        floatPtrToNull(record.TrunkAngleMin),
		TrunkAngleMax:        floatPtrToNull(record.TrunkAngleMax),
		DistanceKm:           floatPtrToNull(record.DistanceKm),
		DurationSec:          floatPtrToNull(record.DurationSec),
		PaceMinPerKm:         floatPtrToNull(record.PaceMinPerKm),
		VideoURL:             record.VideoURL,
		CreatedAt:            record.CreatedAt,
	}
	query, args, err := qb.InsertModel("results", insertModel, "")
	if err != nil {
		return result.Record{}, fmt.Errorf("build create result query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return result.Record{}, fmt.Errorf("create result: %w", err)
	}

	return record, nil
}

func resultRowsToRecords(rows []resultTableModel) []result.Record {
	out := make([]result.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, result.Record{
			ID:                   row.ID,
			AthleteID:            row.AthleteID,
			Exercise:             row.Exercise,
			Score:                row.Score,
			Feedback:             []string(row.Feedback),
			Corrections:          []string(row.Corrections),
			Reps:                 nullIntToPtr(row.Reps),
			JumpHeightCm:         nullFloatToPtr(row.JumpHeightCm),
			JumpDisplacementNorm: nullFloatToPtr(row.JumpDisplacementNorm),
			Turns:                nullIntToPtr(row.Turns),
			SplitTimes:           []float64(row.SplitTimes),
			Cadence:              nullFloatToPtr(row.Cadence),
			TrunkAngleAvg:        nullFloatToPtr(row.TrunkAngleAvg),
			TrunkAngleMin:        nullFloatToPtr(row.TrunkAngleMin),
			TrunkAngleMax:        nullFloatToPtr(row.TrunkAngleMax),
			DistanceKm:           nullFloatToPtr(row.DistanceKm),
			DurationSec:          nullFloatToPtr(row.DurationSec),
			PaceMinPerKm:         nullFloatToPtr(row.PaceMinPerKm),
			VideoURL:             row.VideoURL,
			CreatedAt:            row.CreatedAt,
		})
	}

	return out
}
