package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/zynoshop/storefront-backend/internal/models"
	"github.com/zynoshop/storefront-backend/internal/repository"
)

func newImageFixture(t *testing.T) (*ImageService, *repository.Stores) {
	t.Helper()
	stores := repository.NewMemoryStores()
	svc := NewImageService(stores.Images, stores.Products)
	ctx := context.Background()

	for _, p := range []models.Product{
		{ProductID: "P1", ProductName: "Blue Shirt", Category: "Apparel"},
		{ProductID: "P2", ProductName: "Ceramic Mug", Category: "Homeware"},
	} {
		if _, err := stores.Products.Save(ctx, p); err != nil {
			t.Fatalf("seed product: %v", err)
		}
	}
	return svc, stores
}

func TestImageService_SaveImage(t *testing.T) {
	svc, _ := newImageFixture(t)
	ctx := context.Background()

	data := []byte{0xFF, 0xD8, 0xFF}
	image, err := svc.SaveImage(ctx, data, "shirt.jpg", "image/jpeg", "P1")
	if err != nil {
		t.Fatalf("SaveImage() unexpected error = %v", err)
	}
	if image.ID == "" {
		t.Error("SaveImage() did not generate an ID")
	}
	if image.ProductID != "P1" || image.FileName != "shirt.jpg" || image.ContentType != "image/jpeg" {
		t.Errorf("SaveImage() = %+v, want stored metadata", image)
	}

	stored, err := svc.GetImage(ctx, image.ID)
	if err != nil {
		t.Fatalf("GetImage() unexpected error = %v", err)
	}
	if !bytes.Equal(stored.Data, data) {
		t.Errorf("GetImage() data = %v, want %v", stored.Data, data)
	}
}

func TestImageService_SaveImage_DropsDanglingProductLink(t *testing.T) {
	svc, _ := newImageFixture(t)

	image, err := svc.SaveImage(context.Background(), []byte("png"), "x.png", "image/png", "no-such-product")
	if err != nil {
		t.Fatalf("SaveImage() unexpected error = %v", err)
	}
	if image.ProductID != "" {
		t.Errorf("SaveImage() kept dangling product link %q, want empty", image.ProductID)
	}
}

func TestImageService_SaveImage_RejectsEmptyFile(t *testing.T) {
	svc, _ := newImageFixture(t)

	_, err := svc.SaveImage(context.Background(), nil, "empty.png", "image/png", "")
	if !errors.Is(err, ErrEmptyFile) {
		t.Errorf("SaveImage() with no bytes = %v, want ErrEmptyFile", err)
	}
}

func TestImageService_Filters(t *testing.T) {
	svc, _ := newImageFixture(t)
	ctx := context.Background()

	seed := []struct {
		fileName, contentType, productID string
	}{
		{"shirt-front.jpg", "image/jpeg", "P1"},
		{"shirt-back.jpg", "image/jpeg", "P1"},
		{"mug.png", "image/png", "P2"},
		{"banner.png", "image/png", ""},
	}
	for _, s := range seed {
		if _, err := svc.SaveImage(ctx, []byte("bytes"), s.fileName, s.contentType, s.productID); err != nil {
			t.Fatalf("seed image: %v", err)
		}
	}

	byProduct, err := svc.GetImagesByProductID(ctx, "P1")
	if err != nil {
		t.Fatalf("GetImagesByProductID() unexpected error = %v", err)
	}
	if len(byProduct) != 2 {
		t.Errorf("GetImagesByProductID(P1) = %d images, want 2", len(byProduct))
	}

	if _, err := svc.GetImagesByProductID(ctx, "no-such-product"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("GetImagesByProductID() for unknown product = %v, want ErrNotFound", err)
	}

	byType, err := svc.GetImagesByContentType(ctx, "image/png")
	if err != nil {
		t.Fatalf("GetImagesByContentType() unexpected error = %v", err)
	}
	if len(byType) != 2 {
		t.Errorf("GetImagesByContentType(image/png) = %d images, want 2", len(byType))
	}

	byName, err := svc.GetImagesByFileName(ctx, "mug.png")
	if err != nil {
		t.Fatalf("GetImagesByFileName() unexpected error = %v", err)
	}
	if len(byName) != 1 {
		t.Errorf("GetImagesByFileName(mug.png) = %d images, want 1", len(byName))
	}

	byCategory, err := svc.GetImagesByProductCategory(ctx, "Homeware")
	if err != nil {
		t.Fatalf("GetImagesByProductCategory() unexpected error = %v", err)
	}
	if len(byCategory) != 1 || byCategory[0].FileName != "mug.png" {
		t.Errorf("GetImagesByProductCategory(Homeware) = %v, want [mug.png]", byCategory)
	}
}

func TestImageService_UpdateImage(t *testing.T) {
	svc, _ := newImageFixture(t)
	ctx := context.Background()

	image, err := svc.SaveImage(ctx, []byte("v1"), "v1.png", "image/png", "P1")
	if err != nil {
		t.Fatalf("SaveImage() unexpected error = %v", err)
	}

	updated, err := svc.UpdateImage(ctx, models.Image{
		Data:        []byte("v2"),
		FileName:    "v2.jpg",
		ContentType: "image/jpeg",
		ProductID:   "P2",
	}, image.ID)
	if err != nil {
		t.Fatalf("UpdateImage() unexpected error = %v", err)
	}
	if updated.ID != image.ID {
		t.Errorf("UpdateImage() changed the key to %q", updated.ID)
	}
	if string(updated.Data) != "v2" || updated.FileName != "v2.jpg" || updated.ContentType != "image/jpeg" || updated.ProductID != "P2" {
		t.Errorf("UpdateImage() did not copy mutable fields: %+v", updated)
	}

	_, err = svc.UpdateImage(ctx, models.Image{}, "no-such-image")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("UpdateImage() for unknown id = %v, want ErrNotFound", err)
	}
}

func TestTransactionService_ByOrderID(t *testing.T) {
	stores := repository.NewMemoryStores()
	svc := NewTransactionService(stores.Transactions)
	ctx := context.Background()

	saved, err := svc.SaveTransaction(ctx, models.Transaction{Amount: 34.98, PaymentMethod: "card", OrderID: "O1"})
	if err != nil {
		t.Fatalf("SaveTransaction() unexpected error = %v", err)
	}
	if saved.TransactionID == "" {
		t.Error("SaveTransaction() did not generate an ID")
	}

	byOrder, err := svc.GetTransactionByOrderID(ctx, "O1")
	if err != nil {
		t.Fatalf("GetTransactionByOrderID() unexpected error = %v", err)
	}
	if byOrder.TransactionID != saved.TransactionID {
		t.Errorf("GetTransactionByOrderID() = %+v, want the saved transaction", byOrder)
	}

	if _, err := svc.GetTransactionByOrderID(ctx, "no-such-order"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("GetTransactionByOrderID() for unknown order = %v, want ErrNotFound", err)
	}

	updated, err := svc.UpdateTransaction(ctx, models.Transaction{Amount: 20, PaymentMethod: "paypal", OrderID: "ignored"}, saved.TransactionID)
	if err != nil {
		t.Fatalf("UpdateTransaction() unexpected error = %v", err)
	}
	if updated.Amount != 20 || updated.PaymentMethod != "paypal" {
		t.Errorf("UpdateTransaction() did not copy mutable fields: %+v", updated)
	}
	if updated.OrderID != "O1" {
		t.Errorf("UpdateTransaction() touched the order reference: %q", updated.OrderID)
	}
}
