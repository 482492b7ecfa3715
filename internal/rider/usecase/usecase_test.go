package usecase_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/neilotoole/slogt"
	"github.com/shandysiswandi/gofood/internal/pkg/clock"
	"github.com/shandysiswandi/gofood/internal/pkg/goerror"
	"github.com/shandysiswandi/gofood/internal/pkg/idempotency"
	"github.com/shandysiswandi/gofood/internal/pkg/instrument"
	"github.com/shandysiswandi/gofood/internal/pkg/valueobject"
	"github.com/shandysiswandi/gofood/internal/rider/entity"
	"github.com/shandysiswandi/gofood/internal/rider/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var frozenNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

type fakeRepoDB struct {
	byID      map[int64]*entity.Rider
	createErr error
	updateErr error
}

func (f *fakeRepoDB) CreateRider(_ context.Context, r *entity.Rider) error {
	if f.createErr != nil {
		return f.createErr
	}
	if f.byID == nil {
		f.byID = map[int64]*entity.Rider{}
	}
	cp := *r
	f.byID[r.ID] = &cp
	return nil
}

func (f *fakeRepoDB) GetRider(_ context.Context, id int64) (*entity.Rider, error) {
	r, ok := f.byID[id]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRepoDB) UpdateRiderLocation(_ context.Context, id int64, loc valueobject.Location, updatedAt time.Time) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	r, ok := f.byID[id]
	if !ok {
		return goerror.ErrNotFound
	}
	r.CurrentLocation = &loc
	r.UpdatedAt = updatedAt
	return nil
}

type fakeMessaging struct {
	registered []usecase.RiderRegisteredEvent
}

func (f *fakeMessaging) PublishRiderRegistered(_ context.Context, msg usecase.RiderRegisteredEvent) error {
	f.registered = append(f.registered, msg)
	return nil
}

type fakeIdempotency struct{ seen map[string]bool }

func (f *fakeIdempotency) Exec(ctx context.Context, key string, fn func(context.Context) error, _ ...idempotency.Option) error {
	if f.seen == nil {
		f.seen = map[string]bool{}
	}
	if f.seen[key] {
		return idempotency.ErrAlreadyInProgress
	}
	f.seen[key] = true
	return fn(ctx)
}

type fakeConfig struct{}

func (fakeConfig) Close() error                    { return nil }
func (fakeConfig) GetBool(string) bool             { return false }
func (fakeConfig) GetString(string) string         { return "" }
func (fakeConfig) GetInt(string) int               { return 0 }
func (fakeConfig) GetInt64(string) int64           { return 0 }
func (fakeConfig) GetFloat64(string) float64       { return 0 }
func (fakeConfig) GetSecond(string) time.Duration  { return 0 }
func (fakeConfig) GetMinute(string) time.Duration  { return 10 * time.Minute }
func (fakeConfig) GetHour(string) time.Duration    { return 0 }
func (fakeConfig) GetArray(string) []string        { return nil }
func (fakeConfig) GetMap(string) map[string]string { return nil }

type sequenceID struct{ next int64 }

func (s *sequenceID) Generate() int64 {
	s.next++
	return s.next
}

func newUsecase(t *testing.T) (*usecase.Usecase, *fakeRepoDB, *fakeMessaging) {
	t.Helper()
	slog.SetDefault(slogt.New(t))

	db := &fakeRepoDB{}
	mq := &fakeMessaging{}
	uc := usecase.New(usecase.Dependency{
		RepoDB:        db,
		RepoMessaging: mq,
		Idempotency:   &fakeIdempotency{},
		Config:        fakeConfig{},
		UID:           &sequenceID{next: 500},
		Clock:         clock.Frozen(frozenNow),
		Instrument:    instrument.NewNoop(),
	})

	return uc, db, mq
}

func validRider() *entity.Rider {
	return &entity.Rider{
		Name:          " Budi Santoso ",
		Email:         "Budi@GoFood.id",
		Phone:         "0812-3456-7890",
		VehicleNumber: "b 1234 xyz",
	}
}

func TestValidateRider(t *testing.T) {
	uc, db, _ := newUsecase(t)

	assert.True(t, uc.ValidateRider(context.Background(), validRider()).IsEmpty())

	r := validRider()
	r.Email = "not-an-email"
	r.CurrentLocation = &valueobject.Location{Lat: 91, Lon: 0}
	errs := uc.ValidateRider(context.Background(), r)
	assert.Equal(t, []string{"CurrentLocation.Lat", "Email"}, errs.Fields())
	assert.Empty(t, db.byID)
}

func TestCreateRider(t *testing.T) {
	t.Run("persists normalized rider", func(t *testing.T) {
		uc, db, mq := newUsecase(t)

		got, err := uc.CreateRider(context.Background(), usecase.CreateRiderInput{Rider: validRider()})
		require.NoError(t, err)

		assert.Equal(t, int64(501), got.ID)
		assert.Equal(t, "Budi Santoso", got.Name)
		assert.Equal(t, "budi@gofood.id", got.Email)
		assert.Equal(t, "B 1234 XYZ", got.VehicleNumber)
		assert.Equal(t, frozenNow, got.CreatedAt)
		assert.Contains(t, db.byID, int64(501))
		assert.Equal(t, []usecase.RiderRegisteredEvent{{
			RiderID:       501,
			Name:          "Budi Santoso",
			VehicleNumber: "B 1234 XYZ",
			RegisteredAt:  frozenNow,
		}}, mq.registered)
	})

	t.Run("validation error", func(t *testing.T) {
		uc, db, _ := newUsecase(t)

		_, err := uc.CreateRider(context.Background(), usecase.CreateRiderInput{Rider: nil})

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, map[string][]string{"Rider": {"Rider is required"}}, gerr.Fields())
		assert.Empty(t, db.byID)
	})

	t.Run("duplicate key conflicts", func(t *testing.T) {
		uc, db, _ := newUsecase(t)

		_, err := uc.CreateRider(context.Background(), usecase.CreateRiderInput{IdempotencyKey: "k1", Rider: validRider()})
		require.NoError(t, err)
		_, err = uc.CreateRider(context.Background(), usecase.CreateRiderInput{IdempotencyKey: "k1", Rider: validRider()})

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, goerror.CodeConflict, gerr.Code())
		assert.Len(t, db.byID, 1)
	})

	t.Run("email already registered", func(t *testing.T) {
		uc, db, _ := newUsecase(t)
		db.createErr = goerror.ErrConflict

		_, err := uc.CreateRider(context.Background(), usecase.CreateRiderInput{Rider: validRider()})

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, goerror.CodeConflict, gerr.Code())
		assert.Equal(t, "Rider email already registered", gerr.Msg())
	})

	t.Run("repository failure", func(t *testing.T) {
		uc, db, mq := newUsecase(t)
		db.createErr = errors.New("disk full")

		_, err := uc.CreateRider(context.Background(), usecase.CreateRiderInput{Rider: validRider()})

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, goerror.TypeServer, gerr.Type())
		assert.Empty(t, mq.registered)
	})
}

func TestGetRider_NotFound(t *testing.T) {
	uc, _, _ := newUsecase(t)

	_, err := uc.GetRider(context.Background(), 9)

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, goerror.CodeNotFound, gerr.Code())
}

func TestUpdateRiderLocation(t *testing.T) {
	uc, db, _ := newUsecase(t)
	created, err := uc.CreateRider(context.Background(), usecase.CreateRiderInput{Rider: validRider()})
	require.NoError(t, err)

	t.Run("stores new position", func(t *testing.T) {
		got, err := uc.UpdateRiderLocation(context.Background(), usecase.UpdateRiderLocationInput{
			ID:       created.ID,
			Location: &valueobject.Location{Lat: -6.21, Lon: 106.82},
		})
		require.NoError(t, err)
		assert.Equal(t, &valueobject.Location{Lat: -6.21, Lon: 106.82}, got.CurrentLocation)
	})

	t.Run("missing location", func(t *testing.T) {
		_, err := uc.UpdateRiderLocation(context.Background(), usecase.UpdateRiderLocationInput{ID: created.ID})

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, map[string][]string{"CurrentLocation": {"CurrentLocation is required"}}, gerr.Fields())
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := uc.UpdateRiderLocation(context.Background(), usecase.UpdateRiderLocationInput{
			ID:       created.ID,
			Location: &valueobject.Location{Lat: 0, Lon: 181},
		})

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, []string{"CurrentLocation.Lon"}, keys(gerr.Fields()))
	})

	t.Run("unknown rider", func(t *testing.T) {
		_, err := uc.UpdateRiderLocation(context.Background(), usecase.UpdateRiderLocationInput{
			ID:       404,
			Location: &valueobject.Location{Lat: 1, Lon: 1},
		})

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, goerror.CodeNotFound, gerr.Code())
	})

	t.Run("repository failure", func(t *testing.T) {
		db.updateErr = errors.New("timeout")
		defer func() { db.updateErr = nil }()

		_, err := uc.UpdateRiderLocation(context.Background(), usecase.UpdateRiderLocationInput{
			ID:       created.ID,
			Location: &valueobject.Location{Lat: 1, Lon: 1},
		})

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, goerror.TypeServer, gerr.Type())
	})
}

func keys(m map[string][]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
