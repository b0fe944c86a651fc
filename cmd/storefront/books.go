package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ErlanBelekov/bookstore/internal/domain"
	"github.com/ErlanBelekov/bookstore/internal/viewmodel"
)

func newBooksCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "books",
		Short: "Browse the catalog",
	}

	var category int
	list := &cobra.Command{
		Use:   "list",
		Short: "List books, optionally in one category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			home := viewmodel.NewHome(a.catalog)
			res := home.FilterByCategory(cmd.Context(), category)
			if res.IsError() {
				return errors.New(res.Message())
			}
			books, _ := res.Data()
			a.printBooks(books)
			return nil
		},
	}
	list.Flags().IntVar(&category, "category", 0, "category id (0 for all)")

	newest := &cobra.Command{
		Use:   "new",
		Short: "List the newest arrivals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res := a.catalog.NewBooks(cmd.Context())
			if res.IsError() {
				return errors.New(res.Message())
			}
			books, _ := res.Data()
			a.printBooks(books)
			return nil
		},
	}

	search := &cobra.Command{
		Use:   "search <keyword>...",
		Short: "Search titles and authors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := viewmodel.NewHome(a.catalog).Search(cmd.Context(), strings.Join(args, " "))
			if res.IsError() {
				return errors.New(res.Message())
			}
			books, _ := res.Data()
			a.printBooks(books)
			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show <book-id>",
		Short: "Show one book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			res := viewmodel.NewBookDetail(a.catalog, a.cart, a.reviews).LoadBook(cmd.Context(), id)
			if res.IsError() {
				return errors.New(res.Message())
			}
			b, _ := res.Data()
			a.printBook(b)
			return nil
		},
	}

	reviews := &cobra.Command{
		Use:   "reviews <book-id>",
		Short: "Show a book's reviews",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			vm := viewmodel.NewBookDetail(a.catalog, a.cart, a.reviews)
			stats := vm.LoadReviewStats(cmd.Context(), id)
			if stats.IsError() {
				return errors.New(stats.Message())
			}
			list := vm.LoadReviews(cmd.Context(), id)
			if list.IsError() {
				return errors.New(list.Message())
			}
			s, _ := stats.Data()
			rs, _ := list.Data()
			a.printReviews(s, rs)
			return nil
		},
	}

	var (
		rating  int
		comment string
	)
	review := &cobra.Command{
		Use:   "review <book-id>",
		Short: "Rate and review a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			res := viewmodel.NewBookDetail(a.catalog, a.cart, a.reviews).SubmitReview(cmd.Context(), id, rating, comment)
			if res.IsError() {
				return errors.New(res.Message())
			}
			fmt.Fprintf(a.out, "Thanks! You rated book %d %d/%d.\n", id, rating, domain.MaxRating)
			return nil
		},
	}
	review.Flags().IntVar(&rating, "rating", 0, "stars, 1 to 5")
	review.Flags().StringVar(&comment, "comment", "", "optional review text")
	_ = review.MarkFlagRequired("rating")

	cmd.AddCommand(list, newest, search, show, reviews, review)
	return cmd
}

func newCategoriesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List book categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res := viewmodel.NewHome(a.catalog).LoadCategories(cmd.Context())
			if res.IsError() {
				return errors.New(res.Message())
			}
			cats, _ := res.Data()
			tw := a.table("ID", "NAME", "DESCRIPTION")
			for _, c := range cats {
				fmt.Fprintf(tw, "%d\t%s\t%s\n", c.ID, c.Name, c.Description)
			}
			return tw.Flush()
		},
	}

	show := &cobra.Command{
		Use:   "show <category-id>",
		Short: "Show one category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			res := a.catalog.Category(cmd.Context(), id)
			if res.IsError() {
				return errors.New(res.Message())
			}
			c, _ := res.Data()
			fmt.Fprintf(a.out, "%s (id %d)\n", c.Name, c.ID)
			if c.Description != "" {
				fmt.Fprintln(a.out, c.Description)
			}
			return nil
		},
	}

	cmd.AddCommand(show)
	return cmd
}

func (a *app) printBooks(books []domain.Book) {
	if len(books) == 0 {
		fmt.Fprintln(a.out, "No books found")
		return
	}
	tw := a.table("ID", "TITLE", "AUTHOR", "CATEGORY", "PRICE", "STOCK")
	for _, b := range books {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d\n", b.ID, b.Title, b.Author, b.CategoryName, money(b.Price), b.StockQuantity)
	}
	_ = tw.Flush()
}

func (a *app) printBook(b domain.Book) {
	fmt.Fprintf(a.out, "%s\nby %s\n\n", b.Title, b.Author)
	tw := a.table()
	fmt.Fprintf(tw, "Category:\t%s\n", b.CategoryName)
	fmt.Fprintf(tw, "Price:\t%s\n", money(b.Price))
	fmt.Fprintf(tw, "In stock:\t%d\n", b.StockQuantity)
	if b.ReviewCount > 0 {
		fmt.Fprintf(tw, "Rating:\t%.1f/%d (%d reviews)\n", b.AverageRating, domain.MaxRating, b.ReviewCount)
	}
	if b.ISBN != "" {
		fmt.Fprintf(tw, "ISBN:\t%s\n", b.ISBN)
	}
	if b.Publisher != "" {
		fmt.Fprintf(tw, "Publisher:\t%s\n", b.Publisher)
	}
	if b.PublicationYear > 0 {
		fmt.Fprintf(tw, "Published:\t%d\n", b.PublicationYear)
	}
	if b.Pages > 0 {
		fmt.Fprintf(tw, "Pages:\t%d\n", b.Pages)
	}
	_ = tw.Flush()
	if b.Description != "" {
		fmt.Fprintf(a.out, "\n%s\n", b.Description)
	}
}

func (a *app) printReviews(s domain.ReviewStats, reviews []domain.Review) {
	if s.TotalReviews == 0 {
		fmt.Fprintln(a.out, "No reviews yet")
		return
	}
	fmt.Fprintf(a.out, "Average %.1f/%d from %d reviews\n\n", s.AverageRating, domain.MaxRating, s.TotalReviews)
	for _, r := range reviews {
		fmt.Fprintf(a.out, "%s  %s  %s\n", strings.Repeat("*", r.Rating), r.UserName, r.CreatedAt.Format("2006-01-02"))
		if r.Comment != "" {
			fmt.Fprintf(a.out, "  %s\n", r.Comment)
		}
	}
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
