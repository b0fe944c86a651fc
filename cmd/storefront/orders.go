package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ErlanBelekov/bookstore/internal/domain"
	"github.com/ErlanBelekov/bookstore/internal/storefront"
	"github.com/ErlanBelekov/bookstore/internal/viewmodel"
)

func newCheckoutCmd(a *app) *cobra.Command {
	var address, phone, payment, notes string

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Place an order for everything in the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			vm := viewmodel.NewCheckout(a.orders)
			if err := vm.ValidateForm(address, phone, payment); err != nil {
				return err
			}
			method, err := domain.ParsePaymentMethod(payment)
			if err != nil {
				return fmt.Errorf("payment method must be one of %s, %s, %s", domain.PaymentCOD, domain.PaymentVNPay, domain.PaymentMoMo)
			}

			res := vm.PlaceOrder(cmd.Context(), storefront.CreateOrderInput{
				ShippingAddress: address,
				PhoneNumber:     phone,
				PaymentMethod:   method,
				Notes:           notes,
			})
			if res.IsError() {
				return errors.New(res.Message())
			}
			order, _ := res.Data()
			fmt.Fprintf(a.out, "Order #%d placed\n\n", order.ID)
			a.printOrder(order)
			return nil
		},
	}
	cmd.Flags().StringVar(&address, "address", "", "shipping address")
	cmd.Flags().StringVar(&phone, "phone", "", "contact phone number")
	cmd.Flags().StringVar(&payment, "payment", string(domain.PaymentCOD), "payment method: COD, VNPAY or MOMO")
	cmd.Flags().StringVar(&notes, "notes", "", "delivery notes")
	return cmd
}

func newOrdersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Review your orders",
	}

	var status string
	list := &cobra.Command{
		Use:   "list",
		Short: "List your orders, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			vm := viewmodel.NewOrders(a.orders)
			if status != "" {
				st, err := domain.ParseOrderStatus(status)
				if err != nil {
					return fmt.Errorf("unknown status %q", status)
				}
				vm.FilterByStatus(st)
			}
			if res := vm.Load(cmd.Context()); res.IsError() {
				return errors.New(res.Message())
			}

			orders, _ := vm.FilteredOrders()
			if len(orders) == 0 {
				fmt.Fprintln(a.out, "No orders found")
				return nil
			}
			tw := a.table("ID", "DATE", "STATUS", "PAYMENT", "ITEMS", "TOTAL")
			for _, o := range orders {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%s\n",
					o.ID, o.OrderDate.Time().Local().Format(time.DateTime), o.Status,
					o.PaymentMethod, len(o.Items), money(o.TotalAmount))
			}
			return tw.Flush()
		},
	}
	list.Flags().StringVar(&status, "status", "", "only orders in this status, e.g. PENDING")

	show := &cobra.Command{
		Use:   "show <order-id>",
		Short: "Show one order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			vm := viewmodel.NewOrderDetail(a.orders)
			res := vm.Load(cmd.Context(), id)
			if res.IsError() {
				return errors.New(res.Message())
			}
			order, _ := res.Data()
			a.printOrder(order)
			if vm.CanCancel() {
				fmt.Fprintf(a.out, "\nThis order can still be cancelled: storefront orders cancel %d\n", order.ID)
			}
			return nil
		},
	}

	cancel := &cobra.Command{
		Use:   "cancel <order-id>",
		Short: "Cancel a pending or confirmed order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			res := viewmodel.NewOrderDetail(a.orders).CancelOrder(cmd.Context(), id)
			if res.IsError() {
				return errors.New(res.Message())
			}
			fmt.Fprintf(a.out, "Order #%d cancelled\n", id)
			return nil
		},
	}

	cmd.AddCommand(list, show, cancel)
	return cmd
}

func (a *app) printOrder(o domain.Order) {
	tw := a.table()
	fmt.Fprintf(tw, "Order:\t#%d\n", o.ID)
	fmt.Fprintf(tw, "Placed:\t%s\n", o.OrderDate.Time().Local().Format(time.DateTime))
	fmt.Fprintf(tw, "Status:\t%s\n", o.Status)
	fmt.Fprintf(tw, "Payment:\t%s (%s)\n", o.PaymentMethod, o.PaymentStatus)
	fmt.Fprintf(tw, "Ship to:\t%s\n", o.ShippingAddress)
	fmt.Fprintf(tw, "Phone:\t%s\n", o.PhoneNumber)
	if o.Notes != nil && strings.TrimSpace(*o.Notes) != "" {
		fmt.Fprintf(tw, "Notes:\t%s\n", *o.Notes)
	}
	_ = tw.Flush()

	if len(o.Items) > 0 {
		fmt.Fprintln(a.out)
		tw = a.table("TITLE", "QTY", "PRICE", "SUBTOTAL")
		for _, it := range o.Items {
			fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", it.Book.Title, it.Quantity, money(it.PriceAtPurchase), money(it.Subtotal))
		}
		_ = tw.Flush()
	}
	fmt.Fprintf(a.out, "\nTotal: %s\n", money(o.TotalAmount))
}
