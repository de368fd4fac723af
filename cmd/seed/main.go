package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/mdayat/prayer-surah-service/configs"
	"github.com/mdayat/prayer-surah-service/internal/dbutil"
	"github.com/mdayat/prayer-surah-service/internal/services"
	"github.com/mdayat/prayer-surah-service/repository"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.CallerMarshalFunc = func(_ uintptr, file string, line int) string {
		return filepath.Base(file) + ":" + strconv.Itoa(line)
	}
	logger := log.With().Caller().Logger()

	env, err := configs.LoadEnv()
	if err != nil {
		logger.Fatal().Err(err).Send()
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	db, err := configs.NewDb(ctx, env.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Send()
	}
	defer db.Close()

	config := configs.NewConfigs(env, db)

	userId := uuid.New()
	_, err = dbutil.RetryableTxWithData(ctx, db.Conn, func(qtx repository.Querier) (repository.PrayerSurahAyat, error) {
		user, err := qtx.InsertUser(ctx, pgtype.UUID{Bytes: userId, Valid: true})
		if err != nil {
			return repository.PrayerSurahAyat{}, fmt.Errorf("failed to insert user: %w", err)
		}

		return qtx.UpsertUserPrayerSurahAyat(ctx, repository.UpsertUserPrayerSurahAyatParams{
			UserID:   user.ID,
			SurahID:  1,
			StartAya: 1,
			EndAya:   7,
		})
	})

	if err != nil {
		logger.Fatal().Err(err).Msg("failed to seed user and prayer_surah_ayat tables")
	}

	// Access token for trying the authenticated routes locally
	authService := services.NewAuthService(config)
	now := time.Now()

	accessToken, err := authService.CreateAccessToken(services.AccessTokenClaims{
		Type: services.Access,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    config.Env.OriginURL,
			Subject:   userId.String(),
		},
	})

	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create access token")
	}

	fmt.Printf("user_id=%s\naccess_token=%s\n", userId, accessToken)
}
