package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/linkkeeper/internal/common"
	"github.com/dmitrijs2005/linkkeeper/internal/server/models"
)

func newTabService(t *testing.T, m *memManager) (*TabService, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock := newSQLMockDB(t)
	t.Cleanup(func() { _ = db.Close() })
	return NewTabService(db, m), mock, db
}

func addTestUser(m *memManager, id string) {
	m.store.addUser(&models.User{ID: id, Email: id + "@example.com"})
}

func TestTabCreate_Success(t *testing.T) {
	m := newMemManager()
	addTestUser(m, "u-1")
	s, mock, _ := newTabService(t, m)

	mock.ExpectBegin()
	mock.ExpectCommit()

	tab, err := s.Create(context.Background(), "u-1", "music", "Music")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if tab.ID == "" || tab.CreatedAt.IsZero() {
		t.Fatalf("created tab must carry id and timestamp: %+v", tab)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestTabCreate_Validation(t *testing.T) {
	m := newMemManager()
	addTestUser(m, "u-1")
	s, _, _ := newTabService(t, m)
	ctx := context.Background()

	if _, err := s.Create(ctx, "u-1", "", "Music"); !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("empty key: want ErrorValidation, got %v", err)
	}
	if _, err := s.Create(ctx, "u-1", "music", ""); !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("empty label: want ErrorValidation, got %v", err)
	}
}

func TestTabCreate_UnknownUser(t *testing.T) {
	s, mock, _ := newTabService(t, newMemManager())

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := s.Create(context.Background(), "ghost", "music", "Music")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestTabCreate_QuotaExceeded(t *testing.T) {
	m := newMemManager()
	addTestUser(m, "u-1")
	s, mock, _ := newTabService(t, m)
	ctx := context.Background()

	for i := 0; i < MaxTabsPerUser; i++ {
		mock.ExpectBegin()
		mock.ExpectCommit()
		if _, err := s.Create(ctx, "u-1", fmt.Sprintf("k%d", i), "Label"); err != nil {
			t.Fatalf("Create %d error: %v", i, err)
		}
	}

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := s.Create(ctx, "u-1", "one-too-many", "Label")
	if !errors.Is(err, common.ErrorQuotaExceeded) {
		t.Fatalf("want ErrorQuotaExceeded, got %v", err)
	}
}

func TestTabCreate_DuplicateKey(t *testing.T) {
	m := newMemManager()
	addTestUser(m, "u-1")
	s, mock, _ := newTabService(t, m)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectCommit()
	if _, err := s.Create(ctx, "u-1", "music", "Music"); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := s.Create(ctx, "u-1", "music", "Music again")
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("want ErrorAlreadyExists, got %v", err)
	}
}

func TestTabCreate_ConcurrentDistinctKeys(t *testing.T) {
	m := newMemManager()
	addTestUser(m, "u-1")
	s, mock, _ := newTabService(t, m)

	const requests = 10
	mock.MatchExpectationsInOrder(false)
	for i := 0; i < requests; i++ {
		mock.ExpectBegin()
	}
	for i := 0; i < MaxTabsPerUser; i++ {
		mock.ExpectCommit()
	}
	for i := 0; i < requests-MaxTabsPerUser; i++ {
		mock.ExpectRollback()
	}

	var wg sync.WaitGroup
	errs := make([]error, requests)
	for i := 0; i < requests; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.Create(context.Background(), "u-1", fmt.Sprintf("key-%d", i), "Label")
		}(i)
	}
	wg.Wait()

	var ok, quota int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, common.ErrorQuotaExceeded):
			quota++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ok != MaxTabsPerUser || quota != requests-MaxTabsPerUser {
		t.Fatalf("expected %d successes and %d quota failures, got %d/%d",
			MaxTabsPerUser, requests-MaxTabsPerUser, ok, quota)
	}

	stored, err := s.List(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(stored) != MaxTabsPerUser {
		t.Fatalf("store overshoot: %d tabs persisted", len(stored))
	}
}

func TestTabCreate_ConcurrentSameKey(t *testing.T) {
	m := newMemManager()
	addTestUser(m, "u-1")
	s, mock, _ := newTabService(t, m)

	mock.MatchExpectationsInOrder(false)
	mock.ExpectBegin()
	mock.ExpectBegin()
	mock.ExpectCommit()
	mock.ExpectRollback()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.Create(context.Background(), "u-1", "same-key", "Label")
		}(i)
	}
	wg.Wait()

	var ok, conflict int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, common.ErrorAlreadyExists):
			conflict++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ok != 1 || conflict != 1 {
		t.Fatalf("expected exactly one success and one conflict, got %d/%d", ok, conflict)
	}
}

func TestTabList_Empty(t *testing.T) {
	m := newMemManager()
	addTestUser(m, "u-1")
	s, _, _ := newTabService(t, m)

	got, err := s.List(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no tabs, got %d", len(got))
	}
}
