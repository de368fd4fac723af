// Package dbtest provides an in-memory repository.Querier for tests. It keeps
// the constraints of the real schema that the services rely on: the foreign
// key to "user" and the (user_id, surah_id) uniqueness used by the upsert.
package dbtest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/mdayat/prayer-surah-service/repository"
)

type prayerSurahAyatKey struct {
	userId  [16]byte
	surahId int16
}

type Querier struct {
	mu              sync.Mutex
	err             error
	nextId          int32
	users           map[[16]byte]repository.User
	prayerSurahAyat map[prayerSurahAyatKey]repository.PrayerSurahAyat
}

func NewQuerier() *Querier {
	return &Querier{
		users:           make(map[[16]byte]repository.User),
		prayerSurahAyat: make(map[prayerSurahAyatKey]repository.PrayerSurahAyat),
	}
}

// FailWith makes every following call return err. Pass nil to recover.
func (q *Querier) FailWith(err error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.err = err
}

// Count returns the number of prayer_surah_ayat rows of every user.
func (q *Querier) Count() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.prayerSurahAyat)
}

func (q *Querier) InsertUser(_ context.Context, id pgtype.UUID) (repository.User, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.err != nil {
		return repository.User{}, q.err
	}

	if user, ok := q.users[id.Bytes]; ok {
		return user, nil
	}

	user := repository.User{
		ID:        id,
		CreatedAt: pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
	q.users[id.Bytes] = user

	return user, nil
}

func (q *Querier) SelectUserPrayerSurahAyat(_ context.Context, userID pgtype.UUID) ([]repository.PrayerSurahAyat, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.err != nil {
		return nil, q.err
	}

	var items []repository.PrayerSurahAyat
	for key, row := range q.prayerSurahAyat {
		if key.userId == userID.Bytes {
			items = append(items, row)
		}
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].SurahID < items[j].SurahID
	})

	return items, nil
}

func (q *Querier) UpsertUserPrayerSurahAyat(_ context.Context, arg repository.UpsertUserPrayerSurahAyatParams) (repository.PrayerSurahAyat, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.err != nil {
		return repository.PrayerSurahAyat{}, q.err
	}

	if _, ok := q.users[arg.UserID.Bytes]; !ok {
		return repository.PrayerSurahAyat{}, &pgconn.PgError{
			Code:           pgerrcode.ForeignKeyViolation,
			Message:        `insert or update on table "prayer_surah_ayat" violates foreign key constraint`,
			ConstraintName: "prayer_surah_ayat_user_id_fkey",
		}
	}

	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}
	key := prayerSurahAyatKey{userId: arg.UserID.Bytes, surahId: arg.SurahID}

	row, ok := q.prayerSurahAyat[key]
	if !ok {
		q.nextId++
		row = repository.PrayerSurahAyat{
			ID:        q.nextId,
			UserID:    arg.UserID,
			SurahID:   arg.SurahID,
			CreatedAt: now,
		}
	}

	row.StartAya = arg.StartAya
	row.EndAya = arg.EndAya
	row.UpdatedAt = now
	q.prayerSurahAyat[key] = row

	return row, nil
}

var _ repository.Querier = (*Querier)(nil)
