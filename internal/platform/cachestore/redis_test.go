package cachestore

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
)

func testEnvelope(t *testing.T, writtenAt time.Time, payload []byte) []byte {
	t.Helper()
	b, err := json.Marshal(redisEnvelope{WrittenAt: writtenAt, Payload: payload})
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestNewRedisStore_DefaultNamespace(t *testing.T) {
	t.Parallel()

	store := NewRedisStore(nil, "")
	if store.namespace != "powerwidget" {
		t.Errorf("expected default namespace, got %q", store.namespace)
	}
	if got := store.storeKey("spot_prices"); got != "powerwidget:spot_prices" {
		t.Errorf("unexpected store key %q", got)
	}
}

func TestRedisStore_WriteAndRead(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	payload := []byte(`[{"from":"2025-03-10T12:00:00Z","till":"2025-03-10T13:00:00Z","price":0.18}]`)
	env := testEnvelope(t, now, payload)

	mock.ExpectSet("powerwidget:spot_prices", env, 0).SetVal("OK")
	mock.ExpectGet("powerwidget:spot_prices").SetVal(string(env))

	store := NewRedisStore(rdb, "powerwidget")
	ctx := context.Background()

	if err := store.Write(ctx, "spot_prices", payload, now); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}

	got, err := store.Read(ctx, "spot_prices")
	if err != nil {
		t.Fatalf("unexpected read error: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("payload round trip mismatch: %s", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

func TestRedisStore_AgeOf(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	writtenAt := time.Date(2025, 3, 10, 10, 30, 0, 0, time.UTC)
	now := writtenAt.Add(90 * time.Minute)
	env := testEnvelope(t, writtenAt, []byte(`[]`))

	mock.ExpectGet("powerwidget:spot_prices").SetVal(string(env))

	store := NewRedisStore(rdb, "powerwidget")
	age, err := store.AgeOf(context.Background(), "spot_prices", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if age != 90*time.Minute {
		t.Errorf("expected age 90m, got %v", age)
	}
}

func TestRedisStore_Exists(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectExists("powerwidget:spot_prices").SetVal(1)
	mock.ExpectExists("powerwidget:other").SetVal(0)

	store := NewRedisStore(rdb, "powerwidget")
	ctx := context.Background()

	ok, err := store.Exists(ctx, "spot_prices")
	if err != nil || !ok {
		t.Errorf("expected entry to exist, ok=%v err=%v", ok, err)
	}
	ok, err = store.Exists(ctx, "other")
	if err != nil || ok {
		t.Errorf("expected entry to be missing, ok=%v err=%v", ok, err)
	}
}

func TestRedisStore_MissingEntry(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectGet("powerwidget:spot_prices").RedisNil()

	store := NewRedisStore(rdb, "powerwidget")
	_, err := store.Read(context.Background(), "spot_prices")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRedisStore_CorruptedEnvelope(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectGet("powerwidget:spot_prices").SetVal("{not json")

	store := NewRedisStore(rdb, "powerwidget")
	if _, err := store.Read(context.Background(), "spot_prices"); err == nil {
		t.Error("expected an error for a corrupted envelope")
	}
}
