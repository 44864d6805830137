package catalog

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/library/internal/entities"
)

func intPtr(v int) *int { return &v }

func TestBookInput_ToBookAppliesCopyDefaults(t *testing.T) {
	book := BookInput{Title: "Emma", AuthorID: 1}.ToBook()

	assert.Equal(t, 1, book.TotalCopies)
	assert.Equal(t, 1, book.AvailableCopies)
}

func TestBookInput_ToBookKeepsExplicitZero(t *testing.T) {
	book := BookInput{
		Title:           "Emma",
		AuthorID:        1,
		TotalCopies:     intPtr(0),
		AvailableCopies: intPtr(0),
	}.ToBook()

	assert.Equal(t, 0, book.TotalCopies)
	assert.Equal(t, 0, book.AvailableCopies)
}

func TestValidateAuthor(t *testing.T) {
	tests := []struct {
		name   string
		author entities.Author
		fields []string
	}{
		{name: "valid", author: entities.Author{FirstName: "Jane", LastName: "Austen"}},
		{name: "empty first name", author: entities.Author{LastName: "Austen"}, fields: []string{"first_name"}},
		{name: "blank last name", author: entities.Author{FirstName: "Jane", LastName: "   "}, fields: []string{"last_name"}},
		{name: "both missing", author: entities.Author{}, fields: []string{"first_name", "last_name"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAuthor(tt.author)
			if tt.fields == nil {
				assert.NoError(t, err)
				return
			}

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			var got []string
			for _, f := range ve.Fields {
				got = append(got, f.Field)
			}
			assert.Equal(t, tt.fields, got)
		})
	}
}

func TestValidateBook(t *testing.T) {
	valid := entities.Book{Title: "Emma", AuthorID: 1, TotalCopies: 2, AvailableCopies: 2}

	tests := []struct {
		name   string
		mutate func(b *entities.Book)
		field  string
	}{
		{name: "valid", mutate: func(b *entities.Book) {}},
		{name: "zero copies", mutate: func(b *entities.Book) { b.TotalCopies, b.AvailableCopies = 0, 0 }},
		{name: "blank title", mutate: func(b *entities.Book) { b.Title = " " }, field: "title"},
		{name: "missing author", mutate: func(b *entities.Book) { b.AuthorID = 0 }, field: "author_id"},
		{name: "negative total", mutate: func(b *entities.Book) { b.TotalCopies, b.AvailableCopies = -1, 0 }, field: "available_copies"},
		{name: "negative available", mutate: func(b *entities.Book) { b.AvailableCopies = -1 }, field: "available_copies"},
		{name: "available exceeds total", mutate: func(b *entities.Book) { b.AvailableCopies = 3 }, field: "available_copies"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book := valid
			tt.mutate(&book)

			err := ValidateBook(book)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			var fields []string
			for _, f := range ve.Fields {
				fields = append(fields, f.Field)
			}
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestErrorTaxonomy(t *testing.T) {
	notFound := NotFoundError("author", 7)
	assert.True(t, errors.Is(notFound, ErrNotFound))
	assert.Equal(t, "author 7: not found", notFound.Error())

	cause := errors.New("connection refused")
	storeErr := fmt.Errorf("reading authors: %w", NewStoreError("read authors", cause))
	assert.True(t, IsStoreError(storeErr))
	assert.ErrorIs(t, storeErr, cause)

	assert.True(t, IsValidationError(InvalidAuthorReference()))
	assert.Equal(t, InvalidAuthorReferenceMessage, InvalidAuthorReference().Message)
	assert.True(t, IsConflictError(&ConflictError{Message: "author has books"}))
	assert.False(t, IsConflictError(cause))
}
