package repo

import (
	"context"
	"path/filepath"
	"testing"

	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}
	return db
}

func TestOpenSQLite_MissingParentDir(t *testing.T) {
	if _, err := OpenSQLite(filepath.Join(t.TempDir(), "no", "such", "dir.db")); err == nil {
		t.Fatal("expected error for missing parent directory")
	}
}

func TestCreateFeedback_AndTotals(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	sum, count, err := FeedbackTotals(ctx, db, 1)
	if err != nil || sum != 0 || count != 0 {
		t.Fatalf("empty totals = (%d,%d,%v), want (0,0,nil)", sum, count, err)
	}

	if err := CreateFeedback(ctx, db, 1, "alice", 1); err != nil {
		t.Fatalf("CreateFeedback: %v", err)
	}
	if err := CreateFeedback(ctx, db, 1, "bob", -1); err != nil {
		t.Fatalf("CreateFeedback: %v", err)
	}
	if err := CreateFeedback(ctx, db, 2, "alice", 1); err != nil {
		t.Fatalf("CreateFeedback other video: %v", err)
	}

	sum, count, err = FeedbackTotals(ctx, db, 1)
	if err != nil {
		t.Fatalf("FeedbackTotals: %v", err)
	}
	if sum != 0 || count != 2 {
		t.Fatalf("totals = (%d,%d), want (0,2)", sum, count)
	}

	sum, count, _ = FeedbackTotals(ctx, db, 2)
	if sum != 1 || count != 1 {
		t.Fatalf("totals video 2 = (%d,%d), want (1,1)", sum, count)
	}
}

func TestCreateFeedback_DuplicateRejected(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	if err := CreateFeedback(ctx, db, 1, "alice", 1); err != nil {
		t.Fatalf("first CreateFeedback: %v", err)
	}
	if err := CreateFeedback(ctx, db, 1, "alice", -1); err == nil {
		t.Fatal("duplicate (video,user) must violate the unique index")
	}
}
