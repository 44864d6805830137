package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/catalog"
	"github.com/mrlokans/library/internal/entities"
)

type BooksController struct {
	store BookStore
	audit AuditLogger
}

// NewBooksController creates the books controller. audit may be nil.
func NewBooksController(store BookStore, audit AuditLogger) *BooksController {
	return &BooksController{store: store, audit: audit}
}

// Create adds a book. Omitted copy counts default to 1.
// POST /books/
func (bc *BooksController) Create(c *gin.Context) {
	var input catalog.BookInput
	if !bindJSON(c, &input) {
		return
	}

	book, err := bc.store.Create(c.Request.Context(), input.ToBook())
	if err != nil {
		respondCatalogError(c, err, "book", "create book")
		return
	}

	bc.logWrite(c, entities.AuditEventCreate, book.ID, "Created book: "+book.Title)
	respondCreated(c, book)
}

// List returns all books.
// GET /books/
func (bc *BooksController) List(c *gin.Context) {
	books, err := bc.store.ReadAll(c.Request.Context())
	if err != nil {
		respondCatalogError(c, err, "book", "list books")
		return
	}
	c.JSON(http.StatusOK, books)
}

// Get returns one book.
// GET /books/:id
func (bc *BooksController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := bc.store.ReadByID(c.Request.Context(), id)
	if err != nil {
		respondCatalogError(c, err, "book", "get book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// Update replaces a book's fields.
// PUT /books/:id
func (bc *BooksController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input catalog.BookInput
	if !bindJSON(c, &input) {
		return
	}

	book, err := bc.store.Update(c.Request.Context(), id, input.ToBook())
	if err != nil {
		respondCatalogError(c, err, "book", "update book")
		return
	}

	bc.logWrite(c, entities.AuditEventUpdate, book.ID, "Updated book: "+book.Title)
	c.JSON(http.StatusOK, book)
}

// Delete removes a book.
// DELETE /books/:id
func (bc *BooksController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := bc.store.Delete(c.Request.Context(), id); err != nil {
		respondCatalogError(c, err, "book", "delete book")
		return
	}

	bc.logWrite(c, entities.AuditEventDelete, id, fmt.Sprintf("Deleted book %d", id))
	respondSuccess(c, "book deleted")
}

func (bc *BooksController) logWrite(c *gin.Context, eventType entities.AuditEventType, id uint, description string) {
	if bc.audit == nil {
		return
	}
	bc.audit.LogWrite(c.Request.Context(), requestInfo(c), eventType, "book", id, description)
}
