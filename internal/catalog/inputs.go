package catalog

import "github.com/mrlokans/library/internal/entities"

const (
	DefaultTotalCopies     = 1
	DefaultAvailableCopies = 1
)

// AuthorInput is the create/update payload for an author. Any author_id in
// the payload is ignored.
type AuthorInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	BirthYear *int   `json:"birth_year"`
}

func (in AuthorInput) ToAuthor() entities.Author {
	return entities.Author{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		BirthYear: in.BirthYear,
	}
}

// BookInput is the create/update payload for a book. Copy counts are
// pointers so that an omitted value can be told apart from an explicit zero.
type BookInput struct {
	Title           string  `json:"title"`
	AuthorID        uint    `json:"author_id"`
	PublicationYear *int    `json:"publication_year"`
	ISBN            *string `json:"isbn"`
	TotalCopies     *int    `json:"total_copies"`
	AvailableCopies *int    `json:"available_copies"`
}

func (in BookInput) ToBook() entities.Book {
	book := entities.Book{
		Title:           in.Title,
		AuthorID:        in.AuthorID,
		PublicationYear: in.PublicationYear,
		ISBN:            in.ISBN,
		TotalCopies:     DefaultTotalCopies,
		AvailableCopies: DefaultAvailableCopies,
	}
	if in.TotalCopies != nil {
		book.TotalCopies = *in.TotalCopies
	}
	if in.AvailableCopies != nil {
		book.AvailableCopies = *in.AvailableCopies
	}
	return book
}
