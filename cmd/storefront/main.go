// storefront is the command-line client of the bookstore API.
// Run: go run ./cmd/storefront --help
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ErlanBelekov/bookstore/config"
	"github.com/ErlanBelekov/bookstore/internal/api"
	ctxlog "github.com/ErlanBelekov/bookstore/internal/log"
	"github.com/ErlanBelekov/bookstore/internal/session"
	"github.com/ErlanBelekov/bookstore/internal/storefront"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// app holds what every subcommand needs. It is filled in by setup once the
// command line has been parsed.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	logger  *slog.Logger
	store   *session.FileStore
	auth    *storefront.AuthRepository
	catalog *storefront.BookRepository
	cart    *storefront.CartRepository
	orders  *storefront.OrderRepository
	reviews *storefront.ReviewRepository
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "storefront",
		Short: "Browse books, manage your cart and place orders",
		Long: `storefront talks to the bookstore API.

The API address and session file come from the environment:
  STOREFRONT_API_URL       (default http://localhost:8080)
  STOREFRONT_TIMEOUT       (default 30s)
  STOREFRONT_SESSION_FILE  (default <user config dir>/bookstore/session.json)`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	root.AddCommand(
		newLoginCmd(a),
		newRegisterCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newBooksCmd(a),
		newCategoriesCmd(a),
		newCartCmd(a),
		newCheckoutCmd(a),
		newOrdersCmd(a),
	)
	return root
}

func (a *app) setup() error {
	cfg, err := config.LoadClient()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	a.logger = ctxlog.New("local", cfg.SlogLevel(), a.errOut)

	store, err := session.OpenFileStore(cfg.SessionFile)
	if err != nil {
		return err
	}
	a.store = store

	client, err := api.NewClient(cfg.APIURL, store,
		api.WithTimeout(cfg.Timeout),
		api.WithLogger(a.logger),
	)
	if err != nil {
		return fmt.Errorf("api client: %w", err)
	}

	a.auth = storefront.NewAuthRepository(client, store)
	a.catalog = storefront.NewBookRepository(client)
	a.cart = storefront.NewCartRepository(client)
	a.orders = storefront.NewOrderRepository(client)
	a.reviews = storefront.NewReviewRepository(client)
	return nil
}
