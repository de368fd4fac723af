package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/mdayat/prayer-surah-service/configs"
	"github.com/mdayat/prayer-surah-service/internal/retryutil"
	"github.com/mdayat/prayer-surah-service/internal/surahutil"
	"github.com/mdayat/prayer-surah-service/repository"
)

var ErrInvalidAyaRange = errors.New("startAya must be smaller than endAya and both of them must be <= surah length")

type PrayerSurahAyatServicer interface {
	SelectUserPrayerSurahAyat(ctx context.Context, userId uuid.UUID) ([]repository.PrayerSurahAyat, error)
	UpsertUserPrayerSurahAyat(ctx context.Context, arg UpsertUserPrayerSurahAyatParams) (repository.PrayerSurahAyat, error)
}

type prayerSurahAyat struct {
	configs configs.Configs
}

func NewPrayerSurahAyatService(configs configs.Configs) PrayerSurahAyatServicer {
	return &prayerSurahAyat{
		configs: configs,
	}
}

func (p prayerSurahAyat) SelectUserPrayerSurahAyat(ctx context.Context, userId uuid.UUID) ([]repository.PrayerSurahAyat, error) {
	prayerSurahAyat, err := retryutil.RetryWithData(func() ([]repository.PrayerSurahAyat, error) {
		return p.configs.Db.Queries.SelectUserPrayerSurahAyat(ctx, pgtype.UUID{Bytes: userId, Valid: true})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to select user prayer surah ayat: %w", err)
	}

	return prayerSurahAyat, nil
}

type UpsertUserPrayerSurahAyatParams struct {
	UserId   uuid.UUID
	SurahId  int
	StartAya int
	EndAya   int
}

// UpsertUserPrayerSurahAyat stores the ayat range of a surah for a user. The
// row is keyed by (user, surah) and the insert-or-update happens in a single
// statement, so concurrent calls for the same pair cannot create duplicates.
func (p prayerSurahAyat) UpsertUserPrayerSurahAyat(ctx context.Context, arg UpsertUserPrayerSurahAyatParams) (repository.PrayerSurahAyat, error) {
	if !surahutil.IsAyaStartEndNumbersValid(arg.SurahId, arg.StartAya, arg.EndAya) {
		return repository.PrayerSurahAyat{}, ErrInvalidAyaRange
	}

	prayerSurahAyat, err := retryutil.RetryWithData(func() (repository.PrayerSurahAyat, error) {
		return p.configs.Db.Queries.UpsertUserPrayerSurahAyat(ctx, repository.UpsertUserPrayerSurahAyatParams{
			UserID:   pgtype.UUID{Bytes: arg.UserId, Valid: true},
			SurahID:  int16(arg.SurahId),
			StartAya: int16(arg.StartAya),
			EndAya:   int16(arg.EndAya),
		})
	})

	if err != nil {
		return repository.PrayerSurahAyat{}, fmt.Errorf("failed to upsert user prayer surah ayat: %w", err)
	}

	return prayerSurahAyat, nil
}
