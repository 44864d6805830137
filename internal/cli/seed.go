package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mrlokans/library/internal/catalog"
	"github.com/mrlokans/library/internal/database/authors"
	"github.com/mrlokans/library/internal/database/books"
)

type sampleAuthor struct {
	author catalog.AuthorInput
	books  []catalog.BookInput
}

func intPtr(v int) *int { return &v }

var sampleCatalog = []sampleAuthor{
	{
		author: catalog.AuthorInput{FirstName: "Jane", LastName: "Austen", BirthYear: intPtr(1775)},
		books: []catalog.BookInput{
			{Title: "Emma", PublicationYear: intPtr(1815), TotalCopies: intPtr(3), AvailableCopies: intPtr(2)},
			{Title: "Persuasion", PublicationYear: intPtr(1817)},
			{Title: "Pride and Prejudice", PublicationYear: intPtr(1813), TotalCopies: intPtr(5), AvailableCopies: intPtr(5)},
		},
	},
	{
		author: catalog.AuthorInput{FirstName: "George", LastName: "Orwell", BirthYear: intPtr(1903)},
		books: []catalog.BookInput{
			{Title: "Nineteen Eighty-Four", PublicationYear: intPtr(1949), TotalCopies: intPtr(4), AvailableCopies: intPtr(1)},
			{Title: "Animal Farm", PublicationYear: intPtr(1945)},
		},
	},
	{
		author: catalog.AuthorInput{FirstName: "Ursula", LastName: "Le Guin", BirthYear: intPtr(1929)},
		books: []catalog.BookInput{
			{Title: "A Wizard of Earthsea", PublicationYear: intPtr(1968), TotalCopies: intPtr(2), AvailableCopies: intPtr(0)},
		},
	},
}

// SeedResult reports what a seed run inserted.
type SeedResult struct {
	Skipped bool
	Authors int
	Books   int
}

// Seed inserts the sample catalog through the repositories so that the
// usual validation applies. Nothing is written when any author exists.
func Seed(ctx context.Context, authorRepo *authors.Repository, bookRepo *books.Repository) (SeedResult, error) {
	var result SeedResult

	existing, err := authorRepo.Count(ctx)
	if err != nil {
		return result, err
	}
	if existing > 0 {
		result.Skipped = true
		return result, nil
	}

	for _, sample := range sampleCatalog {
		author, err := authorRepo.Create(ctx, sample.author.ToAuthor())
		if err != nil {
			return result, fmt.Errorf("seed author %s %s: %w", sample.author.FirstName, sample.author.LastName, err)
		}
		result.Authors++

		for _, in := range sample.books {
			in.AuthorID = author.ID
			if _, err := bookRepo.Create(ctx, in.ToBook()); err != nil {
				return result, fmt.Errorf("seed book %q: %w", in.Title, err)
			}
			result.Books++
		}
	}

	return result, nil
}

func newSeedCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert a small sample catalog into an empty database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.openDatabase()
			if err != nil {
				return err
			}
			defer db.Close()

			result, err := Seed(cmd.Context(),
				authors.NewRepository(db.DB, a.cfg.Catalog.AuthorDeletePolicy),
				books.NewRepository(db.DB))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if result.Skipped {
				fmt.Fprintln(out, "Catalog already has authors, nothing seeded")
				return nil
			}

			a.log.Info("catalog seeded",
				zap.Int("authors", result.Authors),
				zap.Int("books", result.Books),
			)
			fmt.Fprintf(out, "Seeded %d authors and %d books\n", result.Authors, result.Books)
			return nil
		},
	}
}
