package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/zynoshop/storefront-backend/internal/models"
)

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storefront.db")
	ctx := context.Background()

	db, err := OpenDB(path)
	if err != nil {
		t.Fatalf("OpenDB() unexpected error = %v", err)
	}

	store, err := NewSQLiteStore[string, models.Product](db, "products")
	if err != nil {
		t.Fatalf("NewSQLiteStore() unexpected error = %v", err)
	}

	product := models.Product{ProductID: "P1", ProductName: "Blue Shirt", Category: "Apparel", Price: 24.99}
	if _, err := store.Save(ctx, product); err != nil {
		t.Fatalf("Save() unexpected error = %v", err)
	}
	if _, err := store.Save(ctx, models.Product{ProductID: "P2", ProductName: "Ceramic Mug", Price: 9.99}); err != nil {
		t.Fatalf("Save() unexpected error = %v", err)
	}
	if err := store.DeleteByID(ctx, "P2"); err != nil {
		t.Fatalf("DeleteByID() unexpected error = %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close() unexpected error = %v", err)
	}

	// Reopen: only P1 should be restored
	db2, err := OpenDB(path)
	if err != nil {
		t.Fatalf("OpenDB() reopen unexpected error = %v", err)
	}
	defer db2.Close()

	reopened, err := NewSQLiteStore[string, models.Product](db2, "products")
	if err != nil {
		t.Fatalf("NewSQLiteStore() reopen unexpected error = %v", err)
	}

	found, err := reopened.FindByID(ctx, "P1")
	if err != nil {
		t.Fatalf("FindByID() after reopen unexpected error = %v", err)
	}
	if found != product {
		t.Errorf("FindByID() after reopen = %+v, want %+v", found, product)
	}

	if _, err := reopened.FindByID(ctx, "P2"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByID() for deleted entity after reopen = %v, want ErrNotFound", err)
	}
}

func TestSQLiteStore_PersistsUserPasswordHash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storefront.db")
	ctx := context.Background()

	db, err := OpenDB(path)
	if err != nil {
		t.Fatalf("OpenDB() unexpected error = %v", err)
	}

	store, err := NewSQLiteStore[string, models.User](db, "users")
	if err != nil {
		t.Fatalf("NewSQLiteStore() unexpected error = %v", err)
	}

	hash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	user := models.User{Username: "alice", Password: hash, Email: "alice@example.com"}
	if _, err := store.Save(ctx, user); err != nil {
		t.Fatalf("Save() unexpected error = %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close() unexpected error = %v", err)
	}

	db2, err := OpenDB(path)
	if err != nil {
		t.Fatalf("OpenDB() reopen unexpected error = %v", err)
	}
	defer db2.Close()

	reopened, err := NewSQLiteStore[string, models.User](db2, "users")
	if err != nil {
		t.Fatalf("NewSQLiteStore() reopen unexpected error = %v", err)
	}

	found, err := reopened.FindByID(ctx, "alice")
	if err != nil {
		t.Fatalf("FindByID() after reopen unexpected error = %v", err)
	}
	if found.Password != hash {
		t.Errorf("Password after reopen = %q, want stored hash", found.Password)
	}
	if found.Email != user.Email {
		t.Errorf("Email after reopen = %q, want %q", found.Email, user.Email)
	}
}

func TestSQLiteStore_FailedSnapshotRollsBackMemory(t *testing.T) {
	db, err := OpenDB(filepath.Join(t.TempDir(), "storefront.db"))
	if err != nil {
		t.Fatalf("OpenDB() unexpected error = %v", err)
	}
	ctx := context.Background()

	store, err := NewSQLiteStore[string, models.Product](db, "products")
	if err != nil {
		t.Fatalf("NewSQLiteStore() unexpected error = %v", err)
	}

	existing := models.Product{ProductID: "P1", ProductName: "Blue Shirt", Price: 24.99}
	if _, err := store.Save(ctx, existing); err != nil {
		t.Fatalf("Save() unexpected error = %v", err)
	}

	// Close the database out from under the store so snapshots fail
	if err := db.Close(); err != nil {
		t.Fatalf("Close() unexpected error = %v", err)
	}

	if _, err := store.Save(ctx, models.Product{ProductID: "P2"}); err == nil {
		t.Fatal("Save() after close expected error, got nil")
	}
	if _, err := store.FindByID(ctx, "P2"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByID() for unsnapshotted entity = %v, want ErrNotFound", err)
	}

	if err := store.DeleteByID(ctx, "P1"); err == nil {
		t.Fatal("DeleteByID() after close expected error, got nil")
	}
	found, err := store.FindByID(ctx, "P1")
	if err != nil {
		t.Fatalf("FindByID() after failed delete unexpected error = %v", err)
	}
	if found != existing {
		t.Errorf("FindByID() after failed delete = %+v, want %+v", found, existing)
	}
}

func TestSQLiteStore_BucketsAreIsolated(t *testing.T) {
	db, err := OpenDB(filepath.Join(t.TempDir(), "storefront.db"))
	if err != nil {
		t.Fatalf("OpenDB() unexpected error = %v", err)
	}
	defer db.Close()
	ctx := context.Background()

	products, err := NewSQLiteStore[string, models.Product](db, "products")
	if err != nil {
		t.Fatalf("NewSQLiteStore() unexpected error = %v", err)
	}
	reviews, err := NewSQLiteStore[string, models.Review](db, "reviews")
	if err != nil {
		t.Fatalf("NewSQLiteStore() unexpected error = %v", err)
	}

	if _, err := products.Save(ctx, models.Product{ProductID: "P1"}); err != nil {
		t.Fatalf("Save() unexpected error = %v", err)
	}
	if _, err := reviews.Save(ctx, models.Review{ID: "R1", ProductID: "P1", Rating: 5}); err != nil {
		t.Fatalf("Save() unexpected error = %v", err)
	}

	allProducts, err := products.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll() unexpected error = %v", err)
	}
	allReviews, err := reviews.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll() unexpected error = %v", err)
	}
	if len(allProducts) != 1 || len(allReviews) != 1 {
		t.Errorf("buckets leaked: %d products, %d reviews, want 1 each", len(allProducts), len(allReviews))
	}
}

func TestNewSQLiteStores_AllBuckets(t *testing.T) {
	db, err := OpenDB(filepath.Join(t.TempDir(), "storefront.db"))
	if err != nil {
		t.Fatalf("OpenDB() unexpected error = %v", err)
	}
	defer db.Close()

	stores, err := NewSQLiteStores(db)
	if err != nil {
		t.Fatalf("NewSQLiteStores() unexpected error = %v", err)
	}

	ctx := context.Background()
	if _, err := stores.Users.Save(ctx, models.User{Username: "alice"}); err != nil {
		t.Errorf("Users.Save() unexpected error = %v", err)
	}
	if _, err := stores.Transactions.Save(ctx, models.Transaction{TransactionID: "T1"}); err != nil {
		t.Errorf("Transactions.Save() unexpected error = %v", err)
	}
}
