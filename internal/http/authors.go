package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/catalog"
	"github.com/mrlokans/library/internal/entities"
)

type AuthorsController struct {
	store AuthorStore
	audit AuditLogger
}

// NewAuthorsController creates the authors controller. audit may be nil.
func NewAuthorsController(store AuthorStore, audit AuditLogger) *AuthorsController {
	return &AuthorsController{store: store, audit: audit}
}

// Create adds an author.
// POST /authors/
func (ac *AuthorsController) Create(c *gin.Context) {
	var input catalog.AuthorInput
	if !bindJSON(c, &input) {
		return
	}

	author, err := ac.store.Create(c.Request.Context(), input.ToAuthor())
	if err != nil {
		respondCatalogError(c, err, "author", "create author")
		return
	}

	ac.logWrite(c, entities.AuditEventCreate, author.ID, "Created author: "+fullName(author))
	respondCreated(c, author)
}

// List returns all authors.
// GET /authors/
func (ac *AuthorsController) List(c *gin.Context) {
	authors, err := ac.store.ReadAll(c.Request.Context())
	if err != nil {
		respondCatalogError(c, err, "author", "list authors")
		return
	}
	c.JSON(http.StatusOK, authors)
}

// Get returns one author.
// GET /authors/:id
func (ac *AuthorsController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	author, err := ac.store.ReadByID(c.Request.Context(), id)
	if err != nil {
		respondCatalogError(c, err, "author", "get author")
		return
	}
	c.JSON(http.StatusOK, author)
}

// Update replaces an author's fields.
// PUT /authors/:id
func (ac *AuthorsController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input catalog.AuthorInput
	if !bindJSON(c, &input) {
		return
	}

	author, err := ac.store.Update(c.Request.Context(), id, input.ToAuthor())
	if err != nil {
		respondCatalogError(c, err, "author", "update author")
		return
	}

	ac.logWrite(c, entities.AuditEventUpdate, author.ID, "Updated author: "+fullName(author))
	c.JSON(http.StatusOK, author)
}

// Delete removes an author.
// DELETE /authors/:id
func (ac *AuthorsController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ac.store.Delete(c.Request.Context(), id); err != nil {
		respondCatalogError(c, err, "author", "delete author")
		return
	}

	ac.logWrite(c, entities.AuditEventDelete, id, fmt.Sprintf("Deleted author %d", id))
	respondSuccess(c, "author deleted")
}

func (ac *AuthorsController) logWrite(c *gin.Context, eventType entities.AuditEventType, id uint, description string) {
	if ac.audit == nil {
		return
	}
	ac.audit.LogWrite(c.Request.Context(), requestInfo(c), eventType, "author", id, description)
}

func fullName(a *entities.Author) string {
	return a.FirstName + " " + a.LastName
}
