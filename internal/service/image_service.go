package service

import (
	"context"
	"fmt"
	"strings"

	"backoffice-service/internal/models"
	"backoffice-service/internal/store"
	"backoffice-service/internal/util"

	"go.uber.org/zap"
)

// ImageStore is the gateway slice the image metadata service needs.
type ImageStore interface {
	GetPartImages(ctx context.Context, partID int64) ([]models.PartImage, error)
	GetImageByID(ctx context.Context, id int64) (*models.PartImage, error)
	CreatePartImage(ctx context.Context, image *models.PartImage) error
	PromoteImage(ctx context.Context, id int64) (bool, error)
	DeletePartImage(ctx context.Context, id int64) (bool, error)
}

// ImageService manages part image metadata. File bytes are handled by
// the upload subsystem, not here.
type ImageService struct {
	store  ImageStore
	logger *zap.Logger
}

// NewImageService creates a new image metadata service
func NewImageService(store ImageStore) *ImageService {
	return &ImageService{
		store:  store,
		logger: util.GetLogger(),
	}
}

// ImageInput carries image registration fields
type ImageInput struct {
	FileName string `json:"nome_arquivo" binding:"required"`
	Path     string `json:"caminho" binding:"required"`
	Primary  bool   `json:"principal"`
}

// List returns image metadata for a part, primary first
func (s *ImageService) List(ctx context.Context, partID int64) ([]models.PartImage, error) {
	images, err := s.store.GetPartImages(ctx, partID)
	return nonNilSlice(images), err
}

// Register validates and stores image metadata for a part
func (s *ImageService) Register(ctx context.Context, partID int64, input *ImageInput) (*models.PartImage, error) {
	if strings.TrimSpace(input.FileName) == "" || strings.TrimSpace(input.Path) == "" {
		return nil, fmt.Errorf("%w: nome_arquivo and caminho are required", ErrValidation)
	}

	image := &models.PartImage{
		PartID:   partID,
		FileName: strings.TrimSpace(input.FileName),
		Path:     strings.TrimSpace(input.Path),
		Primary:  input.Primary,
	}
	if err := s.store.CreatePartImage(ctx, image); err != nil {
		return nil, err
	}

	s.logger.Info("Image registered",
		zap.Int64("image_id", image.ID),
		zap.Int64("part_id", partID),
		zap.Bool("primary", image.Primary))
	return image, nil
}

// Promote marks an image as the primary one for its part
func (s *ImageService) Promote(ctx context.Context, id int64) (*models.PartImage, error) {
	ok, err := s.store.PromoteImage(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, store.ErrImageNotFound
	}
	return s.store.GetImageByID(ctx, id)
}

// Delete removes image metadata
func (s *ImageService) Delete(ctx context.Context, id int64) error {
	ok, err := s.store.DeletePartImage(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return store.ErrImageNotFound
	}

	s.logger.Info("Image deleted", zap.Int64("image_id", id))
	return nil
}
