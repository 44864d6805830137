// Package books provides database operations for catalog books.
//
// Create and Update check the referenced author inside the write transaction,
// so a dangling author_id never reaches the books table.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.Create(ctx, catalog.BookInput{Title: "Emma", AuthorID: 1}.ToBook())
package books

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mrlokans/library/internal/catalog"
	"github.com/mrlokans/library/internal/database/authors"
	"github.com/mrlokans/library/internal/entities"
)

// Repository handles book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create validates and inserts a book. Any ID on the input is ignored.
func (r *Repository) Create(ctx context.Context, book entities.Book) (*entities.Book, error) {
	if err := catalog.ValidateBook(book); err != nil {
		return nil, err
	}

	book.ID = 0
	book.Author = nil
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkAuthor(tx, book.AuthorID); err != nil {
			return err
		}
		return translateWriteError(tx.Omit("Author").Create(&book).Error)
	})
	if err != nil {
		return nil, catalog.WrapStoreError("create book", err)
	}
	return &book, nil
}

// ReadAll returns every book in insertion order.
func (r *Repository) ReadAll(ctx context.Context) ([]entities.Book, error) {
	books := []entities.Book{}
	if err := r.db.WithContext(ctx).Order("book_id ASC").Find(&books).Error; err != nil {
		return nil, catalog.WrapStoreError("read books", err)
	}
	return books, nil
}

func (r *Repository) ReadByID(ctx context.Context, id uint) (*entities.Book, error) {
	book, err := find(r.db.WithContext(ctx), id)
	if err != nil {
		return nil, catalog.WrapStoreError("read book", err)
	}
	return book, nil
}

// Update replaces all mutable fields of the book at id.
func (r *Repository) Update(ctx context.Context, id uint, book entities.Book) (*entities.Book, error) {
	if err := catalog.ValidateBook(book); err != nil {
		return nil, err
	}

	var updated *entities.Book
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := find(tx, id); err != nil {
			return err
		}
		if err := checkAuthor(tx, book.AuthorID); err != nil {
			return err
		}

		err := tx.Model(&entities.Book{}).
			Where("book_id = ?", id).
			Updates(map[string]any{
				"title":            book.Title,
				"author_id":        book.AuthorID,
				"publication_year": book.PublicationYear,
				"isbn":             book.ISBN,
				"total_copies":     book.TotalCopies,
				"available_copies": book.AvailableCopies,
			}).Error
		if err := translateWriteError(err); err != nil {
			return err
		}

		updated, err = find(tx, id)
		return err
	})
	if err != nil {
		return nil, catalog.WrapStoreError("update book", err)
	}
	return updated, nil
}

func (r *Repository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := find(tx, id); err != nil {
			return err
		}
		return tx.Where("book_id = ?", id).Delete(&entities.Book{}).Error
	})
	return catalog.WrapStoreError("delete book", err)
}

// Count returns the number of books.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Book{}).Count(&count).Error; err != nil {
		return 0, catalog.WrapStoreError("count books", err)
	}
	return count, nil
}

func checkAuthor(tx *gorm.DB, authorID uint) error {
	ok, err := authors.Exists(tx, authorID)
	if err != nil {
		return err
	}
	if !ok {
		return catalog.InvalidAuthorReference()
	}
	return nil
}

// translateWriteError maps a foreign key violation (an author removed by a
// concurrent request) to the same error as a missing author.
func translateWriteError(err error) error {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return catalog.InvalidAuthorReference()
	}
	return err
}

func find(tx *gorm.DB, id uint) (*entities.Book, error) {
	var book entities.Book
	err := tx.Where("book_id = ?", id).First(&book).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, catalog.NotFoundError("book", id)
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}
