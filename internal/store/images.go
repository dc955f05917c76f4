package store

import (
	"context"
	"database/sql"
	"fmt"

	"backoffice-service/internal/models"
)

// GetPartImages lists image metadata for a part, primary first
func (s *Store) GetPartImages(ctx context.Context, partID int64) ([]models.PartImage, error) {
	var images []models.PartImage
	err := s.db.SelectContext(ctx, &images, `
		SELECT * FROM imagem_peca
		WHERE peca_id = $1
		ORDER BY principal DESC, criado_em ASC`, partID)
	if err != nil {
		return nil, fmt.Errorf("failed to list images for part %d: %w", partID, err)
	}
	return images, nil
}

// GetImageByID retrieves an image metadata row
func (s *Store) GetImageByID(ctx context.Context, id int64) (*models.PartImage, error) {
	var image models.PartImage
	err := s.db.GetContext(ctx, &image, `SELECT * FROM imagem_peca WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, ErrImageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get image %d: %w", id, err)
	}
	return &image, nil
}

// CreatePartImage registers image metadata. When the new image is marked
// primary, any previous primary for the part is demoted in the same
// transaction so at most one primary exists per part.
func (s *Store) CreatePartImage(ctx context.Context, image *models.PartImage) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin image insert for part %d: %w", image.PartID, err)
	}
	defer tx.Rollback()

	if image.Primary {
		_, err = tx.ExecContext(ctx,
			`UPDATE imagem_peca SET principal = false WHERE peca_id = $1 AND principal = true`,
			image.PartID)
		if err != nil {
			return fmt.Errorf("failed to demote primary image for part %d: %w", image.PartID, err)
		}
	}

	err = tx.GetContext(ctx, image, `
		INSERT INTO imagem_peca (peca_id, nome_arquivo, caminho, principal)
		VALUES ($1, $2, $3, $4)
		RETURNING id, criado_em`,
		image.PartID, image.FileName, image.Path, image.Primary)
	if err != nil {
		return fmt.Errorf("failed to create image for part %d: %w", image.PartID, err)
	}

	return tx.Commit()
}

// PromoteImage marks an image as the primary one for its part
func (s *Store) PromoteImage(ctx context.Context, id int64) (bool, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin image promotion %d: %w", id, err)
	}
	defer tx.Rollback()

	var partID int64
	err = tx.GetContext(ctx, &partID, `SELECT peca_id FROM imagem_peca WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get image %d: %w", id, err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE imagem_peca SET principal = false WHERE peca_id = $1 AND principal = true`, partID)
	if err != nil {
		return false, fmt.Errorf("failed to demote primary image for part %d: %w", partID, err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE imagem_peca SET principal = true WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to promote image %d: %w", id, err)
	}

	return true, tx.Commit()
}

// DeletePartImage removes an image metadata row
func (s *Store) DeletePartImage(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM imagem_peca WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete image %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
