package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/zynoshop/storefront-backend/internal/models"
	"github.com/zynoshop/storefront-backend/internal/query"
	"github.com/zynoshop/storefront-backend/internal/repository"
)

// ImageService handles business logic for uploaded images
type ImageService struct {
	images   repository.Store[string, models.Image]
	products repository.Store[string, models.Product]
}

// NewImageService creates a new image service
func NewImageService(
	images repository.Store[string, models.Image],
	products repository.Store[string, models.Product],
) *ImageService {
	return &ImageService{
		images:   images,
		products: products,
	}
}

// SaveImage stores uploaded bytes under a generated ID and returns the
// stored image. A product link pointing at an unknown product is dropped
// rather than rejected, so images can be uploaded before their product.
func (s *ImageService) SaveImage(ctx context.Context, data []byte, fileName, contentType, productID string) (models.Image, error) {
	if len(data) == 0 {
		return models.Image{}, ErrEmptyFile
	}

	if productID != "" {
		if _, err := s.products.FindByID(ctx, productID); errors.Is(err, repository.ErrNotFound) {
			productID = ""
		} else if err != nil {
			return models.Image{}, err
		}
	}

	image := models.Image{
		ID:          uuid.New().String(),
		FileName:    fileName,
		ContentType: contentType,
		Data:        data,
		ProductID:   productID,
	}
	return s.images.Save(ctx, image)
}

// ListImages returns all images
func (s *ImageService) ListImages(ctx context.Context) ([]models.Image, error) {
	return s.images.FindAll(ctx)
}

// GetImage returns an image by ID
func (s *ImageService) GetImage(ctx context.Context, id string) (models.Image, error) {
	return s.images.FindByID(ctx, id)
}

// UpdateImage overwrites data, file name, content type and product link of
// an existing image. Returns repository.ErrNotFound when the ID is unknown.
func (s *ImageService) UpdateImage(ctx context.Context, image models.Image, id string) (models.Image, error) {
	existing, err := s.images.FindByID(ctx, id)
	if err != nil {
		return models.Image{}, err
	}

	existing.Data = image.Data
	existing.FileName = image.FileName
	existing.ContentType = image.ContentType
	existing.ProductID = image.ProductID

	return s.images.Save(ctx, existing)
}

// DeleteImage removes an image; unknown IDs are a no-op
func (s *ImageService) DeleteImage(ctx context.Context, id string) error {
	return s.images.DeleteByID(ctx, id)
}

// GetImagesByProductID returns images linked to the given product.
// Returns repository.ErrNotFound when the product itself does not exist.
func (s *ImageService) GetImagesByProductID(ctx context.Context, productID string) ([]models.Image, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, err
	}
	images, err := s.images.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return query.Filter(images, func(i models.Image) bool {
		return i.ProductID != "" && i.ProductID == productID
	}), nil
}

// GetImagesByContentType returns images whose content type matches exactly
func (s *ImageService) GetImagesByContentType(ctx context.Context, contentType string) ([]models.Image, error) {
	images, err := s.images.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return query.Filter(images, func(i models.Image) bool {
		return i.ContentType == contentType
	}), nil
}

// GetImagesByFileName returns images whose file name matches exactly
func (s *ImageService) GetImagesByFileName(ctx context.Context, fileName string) ([]models.Image, error) {
	images, err := s.images.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return query.Filter(images, func(i models.Image) bool {
		return i.FileName == fileName
	}), nil
}

// GetImagesByProductCategory returns images whose linked product is in the
// given category. Unlinked and dangling images never match.
func (s *ImageService) GetImagesByProductCategory(ctx context.Context, category string) ([]models.Image, error) {
	images, err := s.images.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]models.Image, 0)
	for _, image := range images {
		if image.ProductID == "" {
			continue
		}
		product, err := s.products.FindByID(ctx, image.ProductID)
		if errors.Is(err, repository.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if product.Category == category {
			matched = append(matched, image)
		}
	}
	return matched, nil
}
