package entities

// Author is a catalog author. Authors hold no collection of books; books
// reference their author through Book.AuthorID.
type Author struct {
	ID        uint   `gorm:"column:author_id;primaryKey;autoIncrement" json:"author_id"`
	FirstName string `gorm:"size:255;not null" json:"first_name"`
	LastName  string `gorm:"size:255;not null" json:"last_name"`
	BirthYear *int   `json:"birth_year"`
}

func (Author) TableName() string {
	return "authors"
}

type Book struct {
	ID              uint    `gorm:"column:book_id;primaryKey;autoIncrement" json:"book_id"`
	Title           string  `gorm:"size:512;not null" json:"title"`
	AuthorID        uint    `gorm:"column:author_id;not null;index" json:"author_id"`
	PublicationYear *int    `json:"publication_year"`
	ISBN            *string `gorm:"column:isbn;size:20" json:"isbn"`
	TotalCopies     int     `gorm:"not null" json:"total_copies"`
	AvailableCopies int     `gorm:"not null" json:"available_copies"`

	// Only used to declare the foreign key; never loaded.
	Author *Author `gorm:"foreignKey:AuthorID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (Book) TableName() string {
	return "books"
}
