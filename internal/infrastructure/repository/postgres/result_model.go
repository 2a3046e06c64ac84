package postgres

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

type resultTableModel struct {
	ID                   string          `db:"id"`
	AthleteID            string          `db:"athlete_id"`
	Exercise             string          `db:"exercise"`
	Score                float64         `db:"score"`
	Feedback             pq.StringArray  `db:"feedback"`
	Corrections          pq.StringArray  `db:"corrections"`
	Reps                 sql.NullInt64   `db:"reps"`
	JumpHeightCm         sql.NullFloat64 `db:"jump_height_cm"`
	JumpDisplacementNorm sql.NullFloat64 `db:"jump_displacement_norm"`
	Turns                sql.NullInt64   `db:"turns"`
	SplitTimes           pq.Float64Array `db:"split_times"`
	Cadence              sql.NullFloat64 `db:"cadence"`
	TrunkAngleAvg        sql.NullFloat64 `db:"trunk_angle_avg"`
	TrunkAngleMin        sql.NullFloat64 `db:"trunk_angle_min"`
	TrunkAngleMax        sql.NullFloat64 `db:"trunk_angle_max"`
	DistanceKm           sql.NullFloat64 `db:"distance_km"`
	DurationSec          sql.NullFloat64 `db:"duration_sec"`
	PaceMinPerKm         sql.NullFloat64 `db:"pace_min_per_km"`
	VideoURL             string          `db:"video_url"`
	CreatedAt            time.Time       `db:"created_at"`
}

type resultInsertModel struct {
	ID                   string          `db:"id"`
	AthleteID            string          `db:"athlete_id"`
	Exercise             string          `db:"exercise"`
	Score                float64         `db:"score"`
	Feedback             pq.StringArray  `db:"feedback"`
	Corrections          pq.StringArray  `db:"corrections"`
	Reps                 sql.NullInt64   `db:"reps"`
	JumpHeightCm         sql.NullFloat64 `db:"jump_height_cm"`
	JumpDisplacementNorm sql.NullFloat64 `db:"jump_displacement_norm"`
	Turns                sql.NullInt64   `db:"turns"`
	SplitTimes           pq.Float64Array `db:"split_times"`
	Cadence              sql.NullFloat64 `db:"cadence"`
	TrunkAngleAvg        sql.NullFloat64 `db:"trunk_angle_avg"`
	TrunkAngleMin        sql.NullFloat64 `db:"trunk_angle_min"`
	TrunkAngleMax        sql.NullFloat64 `db:"trunk_angle_max"`
	DistanceKm           sql.NullFloat64 `db:"distance_km"`
	DurationSec          sql.NullFloat64 `db:"duration_sec"`
	PaceMinPerKm         sql.NullFloat64 `db:"pace_min_per_km"`
	VideoURL             string          `db:"video_url"`
	CreatedAt            time.Time       `db:"created_at"`
}
