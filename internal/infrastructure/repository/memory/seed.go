package memory

import (
	"time"

	"github.com/khelsetu/arena/internal/domain/account"
	"github.com/khelsetu/arena/internal/domain/profile"
	"github.com/khelsetu/arena/internal/domain/result"
)

var seedAnchor = time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

func SeedAccounts() []account.Record {
	return []account.Record{
		{
			ID:        "ath-aarav",
			Name:      "Aarav Sharma",
			FirstName: "Aarav",
			LastName:  "Sharma",
			Email:     "aarav.sharma@example.com",
			Username:  "aarav_s",
			State:     "Maharashtra",
			District:  "Pune",
			ImageURL:  "/seed/aarav.png",
			CreatedAt: seedAnchor.AddDate(0, -6, 0),
		},
		{
			ID:        "ath-diya",
			Name:      "Diya Patel",
			FirstName: "Diya",
			LastName:  "Patel",
			Email:     "diya.patel@example.com",
			Username:  "diya_p",
			State:     "Gujarat",
			District:  "Surat",
			CreatedAt: seedAnchor.AddDate(0, -5, -12),
		},
		{
			ID:        "ath-kabir",
			FirstName: "Kabir",
			LastName:  "Singh",
			Email:     "kabir.singh@example.com",
			Username:  "kabir_s",
			State:     "Punjab",
			District:  "Ludhiana",
			CreatedAt: seedAnchor.AddDate(0, -4, -3),
		},
		{
			ID:        "ath-meera",
			Name:      "Meera Nair",
			Email:     "meera.nair@example.com",
			Username:  "meera_n",
			CreatedAt: seedAnchor.AddDate(0, -2, -20),
		},
	}
}

func SeedProfiles() []profile.Record {
	return []profile.Record{
		{
			UserID:       "ath-aarav",
			Name:         "Aarav S.",
			Sport:        "Athletics",
			State:        "Maharashtra",
			ProfileImage: "/seed/aarav-profile.png",
			UpdatedAt:    seedAnchor.AddDate(0, -1, 0),
		},
		{
			UserID:    "ath-diya",
			Sport:     "Kabaddi",
			State:     "Gujarat",
			UpdatedAt: seedAnchor.AddDate(0, -2, -5),
		},
	}
}

func SeedResults() []result.Record {
	reps := func(v int) *int { return &v }
	metric := func(v float64) *float64 { return &v }

	return []result.Record{
		{
			ID:        "res-0001",
			AthleteID: "ath-aarav",
			Exercise:  "situps",
			Score:     82.5,
			Feedback:  []string{"Strong core control"},
			Reps:      reps(42),
			CreatedAt: seedAnchor.AddDate(0, -3, 0),
		},
		{
			ID:           "res-0002",
			AthleteID:    "ath-aarav",
			Exercise:     "vertical-jump",
			Score:        76,
			JumpHeightCm: metric(48.2),
			CreatedAt:    seedAnchor.AddDate(0, -2, -10),
		},
		{
			ID:         "res-0003",
			AthleteID:  "ath-aarav",
			Exercise:   "shuttle-run",
			Score:      88,
			SplitTimes: []float64{2.8, 2.9, 3.1, 3.0},
			CreatedAt:  seedAnchor.AddDate(0, -1, -2),
		},
		{
			ID:          "res-0004",
			AthleteID:   "ath-diya",
			Exercise:    "situps",
			Score:       64,
			Corrections: []string{"Keep knees bent through the full rep"},
			Reps:        reps(31),
			CreatedAt:   seedAnchor.AddDate(0, -2, -1),
		},
		{
			ID:           "res-0005",
			AthleteID:    "ath-diya",
			Exercise:     "endurance-run",
			Score:        71,
			DistanceKm:   metric(2.4),
			DurationSec:  metric(812),
			PaceMinPerKm: metric(5.64),
			CreatedAt:    seedAnchor.AddDate(0, -1, -14),
		},
		{
			ID:        "res-0006",
			AthleteID: "ath-kabir",
			Exercise:  "situps",
			Score:     55,
			Reps:      reps(26),
			CreatedAt: seedAnchor.AddDate(0, -1, -20),
		},
		{
			ID:           "res-0007",
			AthleteID:    "ath-meera",
			Exercise:     "vertical-jump",
			Score:        91,
			JumpHeightCm: metric(52.7),
			Turns:        reps(0),
			CreatedAt:    seedAnchor.AddDate(0, 0, -6),
		},
	}
}
