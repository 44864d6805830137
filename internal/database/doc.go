// Package database provides the data access layer for the catalog.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Driver selection, connection setup, migrations
//	├── authors/         # Author CRUD and the delete policy
//	├── books/           # Book CRUD and the author reference check
//	└── audit/           # Audit event log and retention cleanup
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type working on a shared *gorm.DB:
//
//	db, err := database.NewDatabase(cfg.Database, logger)
//
//	authorsRepo := authors.NewRepository(db.DB, cfg.Catalog.AuthorDeletePolicy)
//	booksRepo := books.NewRepository(db.DB)
//
//	author, err := authorsRepo.Create(ctx, entities.Author{FirstName: "Jane", LastName: "Austen"})
//
// Every repository method takes a context.Context and runs its statements
// through db.WithContext(ctx). Writes that need more than one statement run
// inside db.Transaction, which commits or rolls back on every exit path.
//
// # Errors
//
// Repositories return the error types from internal/catalog:
//
//   - *catalog.ValidationError for bad input, a dangling author reference,
//     or a copy count outside 0 <= available_copies <= total_copies
//   - catalog.ErrNotFound (wrapped) for a missing id
//   - *catalog.ConflictError when an author delete is blocked by books
//   - *catalog.StoreError for everything else
//
// # Adding a New Domain
//
//  1. Create a new sub-package: internal/database/<domain>/
//  2. Define a Repository struct with a *gorm.DB field
//  3. Add NewRepository(db *gorm.DB) constructor
//  4. Add the entity to Models in database.go
//  5. Add compile-time interface check in internal/interfaces/checks.go
package database
