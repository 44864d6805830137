// Package authors provides database operations for catalog authors.
//
// # Usage
//
//	repo := authors.NewRepository(db, config.DeletePolicyReject)
//	author, err := repo.Create(ctx, entities.Author{FirstName: "Jane", LastName: "Austen"})
//	author, err = repo.ReadByID(ctx, author.ID)
package authors

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/library/internal/catalog"
	"github.com/mrlokans/library/internal/config"
	"github.com/mrlokans/library/internal/entities"
)

// Repository handles author database operations.
type Repository struct {
	db           *gorm.DB
	deletePolicy config.DeletePolicy
}

// NewRepository creates a new authors repository. An empty policy behaves as
// config.DeletePolicyReject.
func NewRepository(db *gorm.DB, deletePolicy config.DeletePolicy) *Repository {
	if deletePolicy == "" {
		deletePolicy = config.DeletePolicyReject
	}
	return &Repository{db: db, deletePolicy: deletePolicy}
}

// Create validates and inserts an author. Any ID on the input is ignored.
func (r *Repository) Create(ctx context.Context, author entities.Author) (*entities.Author, error) {
	if err := catalog.ValidateAuthor(author); err != nil {
		return nil, err
	}

	author.ID = 0
	if err := r.db.WithContext(ctx).Create(&author).Error; err != nil {
		return nil, catalog.WrapStoreError("create author", err)
	}
	return &author, nil
}

// ReadAll returns every author in insertion order.
func (r *Repository) ReadAll(ctx context.Context) ([]entities.Author, error) {
	authors := []entities.Author{}
	if err := r.db.WithContext(ctx).Order("author_id ASC").Find(&authors).Error; err != nil {
		return nil, catalog.WrapStoreError("read authors", err)
	}
	return authors, nil
}

func (r *Repository) ReadByID(ctx context.Context, id uint) (*entities.Author, error) {
	author, err := find(r.db.WithContext(ctx), id)
	if err != nil {
		return nil, catalog.WrapStoreError("read author", err)
	}
	return author, nil
}

// Update replaces all mutable fields of the author at id.
func (r *Repository) Update(ctx context.Context, id uint, author entities.Author) (*entities.Author, error) {
	if err := catalog.ValidateAuthor(author); err != nil {
		return nil, err
	}

	var updated *entities.Author
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := find(tx, id); err != nil {
			return err
		}

		err := tx.Model(&entities.Author{}).
			Where("author_id = ?", id).
			Updates(map[string]any{
				"first_name": author.FirstName,
				"last_name":  author.LastName,
				"birth_year": author.BirthYear,
			}).Error
		if err != nil {
			return err
		}

		updated, err = find(tx, id)
		return err
	})
	if err != nil {
		return nil, catalog.WrapStoreError("update author", err)
	}
	return updated, nil
}

// Delete removes the author at id. Authors with books are refused with a
// ConflictError unless the repository uses config.DeletePolicyCascade, in
// which case the books are deleted in the same transaction.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := find(tx, id); err != nil {
			return err
		}

		var bookCount int64
		if err := tx.Model(&entities.Book{}).Where("author_id = ?", id).Count(&bookCount).Error; err != nil {
			return err
		}

		if bookCount > 0 {
			if r.deletePolicy != config.DeletePolicyCascade {
				return &catalog.ConflictError{
					Message: fmt.Sprintf("author %d is referenced by %d book(s)", id, bookCount),
				}
			}
			if err := tx.Where("author_id = ?", id).Delete(&entities.Book{}).Error; err != nil {
				return err
			}
		}

		err := tx.Where("author_id = ?", id).Delete(&entities.Author{}).Error
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			// A book was added between the count and the delete.
			return &catalog.ConflictError{Message: fmt.Sprintf("author %d is referenced by books", id)}
		}
		return err
	})
	return catalog.WrapStoreError("delete author", err)
}

// Exists reports whether an author with id is present, using tx when called
// inside another repository's transaction.
func Exists(tx *gorm.DB, id uint) (bool, error) {
	var count int64
	if err := tx.Model(&entities.Author{}).Where("author_id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Count returns the number of authors.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Author{}).Count(&count).Error; err != nil {
		return 0, catalog.WrapStoreError("count authors", err)
	}
	return count, nil
}

func find(tx *gorm.DB, id uint) (*entities.Author, error) {
	var author entities.Author
	err := tx.Where("author_id = ?", id).First(&author).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, catalog.NotFoundError("author", id)
	}
	if err != nil {
		return nil, err
	}
	return &author, nil
}
