package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/arambha/showroom/internal/catalog"
	dbutil "github.com/arambha/showroom/internal/db"
)

// CreateCategory adds a category to a collection.
func (s *Store) CreateCategory(collection catalog.Collection, name string) (catalog.Category, error) {
	name, err := catalog.ValidateName(name)
	if err != nil {
		return catalog.Category{}, err
	}
	if _, err := catalog.ParseCollection(string(collection)); err != nil {
		return catalog.Category{}, err
	}

	now := s.timestamp()
	cat := catalog.Category{
		ID:         uuid.NewString(),
		Collection: collection,
		Name:       name,
		Slug:       catalog.Slugify(name),
		CreatedAt:  time.Unix(now, 0),
		UpdatedAt:  time.Unix(now, 0),
	}

	_, err = s.db.Exec(`
		INSERT INTO categories (id, collection, name, slug, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, cat.ID, string(cat.Collection), cat.Name, cat.Slug, now, now)
	if err != nil {
		return catalog.Category{}, fmt.Errorf("insert category: %w", err)
	}
	return cat, nil
}

// ListCategories returns a collection's categories, oldest first.
func (s *Store) ListCategories(collection catalog.Collection) ([]catalog.Category, error) {
	rows, err := s.db.Query(`
		SELECT id, collection, name, slug, created_at, updated_at
		FROM categories
		WHERE collection = ?
		ORDER BY created_at, rowid
	`, string(collection))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []catalog.Category
	for rows.Next() {
		cat, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		cats = append(cats, cat)
	}
	return cats, rows.Err()
}

// GetCategory returns a single category.
func (s *Store) GetCategory(id string) (catalog.Category, error) {
	row := s.db.QueryRow(`
		SELECT id, collection, name, slug, created_at, updated_at
		FROM categories WHERE id = ?
	`, id)
	cat, err := scanCategory(row)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Category{}, fmt.Errorf("category %s: %w", id, catalog.ErrNotFound)
	}
	return cat, err
}

// RenameCategory changes a category's name and slug.
func (s *Store) RenameCategory(id, name string) error {
	name, err := catalog.ValidateName(name)
	if err != nil {
		return err
	}

	res, err := s.db.Exec(`
		UPDATE categories SET name = ?, slug = ?, updated_at = ? WHERE id = ?
	`, name, catalog.Slugify(name), s.timestamp(), id)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return requireAffected(res, "category", id)
}

// DeleteCategory removes a category together with all of its products.
func (s *Store) DeleteCategory(id string) error {
	return dbutil.WithTx(s.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM products WHERE category_id = ?`, id); err != nil {
			return fmt.Errorf("delete products: %w", err)
		}
		res, err := tx.Exec(`DELETE FROM categories WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("delete category: %w", err)
		}
		return requireAffected(res, "category", id)
	})
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCategory(row scanner) (catalog.Category, error) {
	var cat catalog.Category
	var collection string
	var createdAt, updatedAt int64
	if err := row.Scan(&cat.ID, &collection, &cat.Name, &cat.Slug, &createdAt, &updatedAt); err != nil {
		return catalog.Category{}, err
	}
	cat.Collection = catalog.Collection(collection)
	cat.CreatedAt = time.Unix(createdAt, 0)
	cat.UpdatedAt = time.Unix(updatedAt, 0)
	return cat, nil
}

func requireAffected(res sql.Result, kind, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, catalog.ErrNotFound)
	}
	return nil
}
