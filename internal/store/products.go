package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/arambha/showroom/internal/catalog"
)

// ProductInput holds the editable fields of a product.
type ProductInput struct {
	Name        string
	Description string
	ImageURL    string
	Price       int64
}

// CreateProduct adds a product to an existing category.
func (s *Store) CreateProduct(categoryID string, in ProductInput) (catalog.Product, error) {
	name, err := catalog.ValidateName(in.Name)
	if err != nil {
		return catalog.Product{}, err
	}
	if _, err := s.GetCategory(categoryID); err != nil {
		return catalog.Product{}, err
	}

	now := s.timestamp()
	p := catalog.Product{
		ID:          uuid.NewString(),
		CategoryID:  categoryID,
		Name:        name,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Price:       in.Price,
		CreatedAt:   time.Unix(now, 0),
		UpdatedAt:   time.Unix(now, 0),
	}

	_, err = s.db.Exec(`
		INSERT INTO products (id, category_id, name, description, image_url, price, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.CategoryID, p.Name, p.Description, p.ImageURL, p.Price, now, now)
	if err != nil {
		return catalog.Product{}, fmt.Errorf("insert product: %w", err)
	}
	return p, nil
}

// ListProducts returns a category's products, oldest first.
func (s *Store) ListProducts(categoryID string) ([]catalog.Product, error) {
	rows, err := s.db.Query(`
		SELECT id, category_id, name, description, image_url, price, created_at, updated_at
		FROM products
		WHERE category_id = ?
		ORDER BY created_at, rowid
	`, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []catalog.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// GetProduct returns a single product.
func (s *Store) GetProduct(id string) (catalog.Product, error) {
	row := s.db.QueryRow(`
		SELECT id, category_id, name, description, image_url, price, created_at, updated_at
		FROM products WHERE id = ?
	`, id)
	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Product{}, fmt.Errorf("product %s: %w", id, catalog.ErrNotFound)
	}
	return p, err
}

// UpdateProduct replaces a product's editable fields.
func (s *Store) UpdateProduct(id string, in ProductInput) error {
	name, err := catalog.ValidateName(in.Name)
	if err != nil {
		return err
	}

	res, err := s.db.Exec(`
		UPDATE products
		SET name = ?, description = ?, image_url = ?, price = ?, updated_at = ?
		WHERE id = ?
	`, name, in.Description, in.ImageURL, in.Price, s.timestamp(), id)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return requireAffected(res, "product", id)
}

// DeleteProduct removes a product.
func (s *Store) DeleteProduct(id string) error {
	res, err := s.db.Exec(`DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return requireAffected(res, "product", id)
}

func scanProduct(row scanner) (catalog.Product, error) {
	var p catalog.Product
	var createdAt, updatedAt int64
	err := row.Scan(&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.ImageURL, &p.Price,
		&createdAt, &updatedAt)
	if err != nil {
		return catalog.Product{}, err
	}
	p.CreatedAt = time.Unix(createdAt, 0)
	p.UpdatedAt = time.Unix(updatedAt, 0)
	return p, nil
}
