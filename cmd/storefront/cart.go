package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ErlanBelekov/bookstore/internal/viewmodel"
)

func newCartCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage your shopping cart",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Show the cart and its total",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.showCart(cmd, viewmodel.NewCart(a.cart))
		},
	}

	var quantity int
	add := &cobra.Command{
		Use:   "add <book-id>",
		Short: "Add a book to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			res := viewmodel.NewBookDetail(a.catalog, a.cart, a.reviews).Add(cmd.Context(), id, quantity)
			if res.IsError() {
				return errors.New(res.Message())
			}
			msg, _ := res.Data()
			fmt.Fprintln(a.out, msg)
			return nil
		},
	}
	add.Flags().IntVarP(&quantity, "quantity", "q", 1, "number of copies")

	update := &cobra.Command{
		Use:   "update <cart-item-id> <quantity>",
		Short: "Change the quantity of a cart line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			qty, err := parseID(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}
			vm := viewmodel.NewCart(a.cart)
			if res := vm.UpdateQuantity(cmd.Context(), id, qty); res.IsError() {
				return errors.New(res.Message())
			}
			return a.printCart(vm)
		},
	}

	remove := &cobra.Command{
		Use:   "remove <cart-item-id>",
		Short: "Remove a line from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			res := viewmodel.NewCart(a.cart).RemoveItem(cmd.Context(), id)
			if res.IsError() {
				return errors.New(res.Message())
			}
			msg, _ := res.Data()
			fmt.Fprintln(a.out, msg)
			return nil
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res := viewmodel.NewCart(a.cart).ClearCart(cmd.Context())
			if res.IsError() {
				return errors.New(res.Message())
			}
			msg, _ := res.Data()
			fmt.Fprintln(a.out, msg)
			return nil
		},
	}

	cmd.AddCommand(list, add, update, remove, clearCmd)
	return cmd
}

func (a *app) showCart(cmd *cobra.Command, vm *viewmodel.Cart) error {
	if res := vm.Load(cmd.Context()); res.IsError() {
		return errors.New(res.Message())
	}
	return a.printCart(vm)
}

// printCart renders the last loaded cart of vm.
func (a *app) printCart(vm *viewmodel.Cart) error {
	res, _ := vm.Items.Get()
	items, _ := res.Data()
	if len(items) == 0 {
		fmt.Fprintln(a.out, "Your cart is empty")
		return nil
	}

	tw := a.table("LINE", "BOOK", "TITLE", "QTY", "PRICE", "SUBTOTAL")
	for _, it := range items {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%d\t%s\t%s\n",
			it.ID, it.Book.ID, it.Book.Title, it.Quantity, money(it.Book.Price), money(it.LineTotal()))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "\n%d item(s), total %s\n", vm.TotalItemCount(), money(vm.TotalAmount()))
	return nil
}
