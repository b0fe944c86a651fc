package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ErlanBelekov/bookstore/internal/storefront"
	"github.com/ErlanBelekov/bookstore/internal/viewmodel"
)

func newLoginCmd(a *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and remember the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				p, err := a.readPassword("Password: ")
				if err != nil {
					return err
				}
				password = p
			}

			res := viewmodel.NewLogin(a.auth).Login(cmd.Context(), email, password)
			if res.IsError() {
				return errors.New(res.Message())
			}
			auth, _ := res.Data()
			fmt.Fprintf(a.out, "Signed in as %s (%s)\n", auth.User.FullName, auth.User.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newRegisterCmd(a *app) *cobra.Command {
	var in storefront.RegisterInput

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a customer account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if in.Password == "" {
				p, err := a.readPassword("Choose a password: ")
				if err != nil {
					return err
				}
				in.Password = p
			}

			res := viewmodel.NewRegister(a.auth).Register(cmd.Context(), in)
			if res.IsError() {
				return errors.New(res.Message())
			}
			auth, _ := res.Data()
			fmt.Fprintf(a.out, "Welcome, %s! You are signed in.\n", auth.User.FullName)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.FullName, "name", "", "full name")
	cmd.Flags().StringVar(&in.Email, "email", "", "account email")
	cmd.Flags().StringVar(&in.Password, "password", "", "account password (prompted when omitted)")
	cmd.Flags().StringVar(&in.PhoneNumber, "phone", "", "phone number")
	cmd.Flags().StringVar(&in.Address, "address", "", "default shipping address")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res := viewmodel.NewProfile(a.auth).SignOut(cmd.Context())
			if res.IsError() {
				return errors.New(res.Message())
			}
			fmt.Fprintln(a.out, "Signed out")
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	var remote bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if remote {
				return a.whoamiRemote(cmd)
			}
			info, ok := viewmodel.NewProfile(a.auth).Info()
			if !ok {
				fmt.Fprintln(a.out, "Not signed in")
				return nil
			}
			fmt.Fprintf(a.out, "%s <%s>\nuser id: %d\nrole:    %s\n", info.FullName, info.Email, info.UserID, info.Role)
			return nil
		},
	}
	cmd.Flags().BoolVar(&remote, "remote", false, "ask the server instead of reading the saved session")
	return cmd
}

// whoamiRemote checks the saved token against the server, which also
// catches tokens that expired or belong to a deactivated account.
func (a *app) whoamiRemote(cmd *cobra.Command) error {
	if !a.auth.IsLoggedIn() {
		fmt.Fprintln(a.out, "Not signed in")
		return nil
	}
	res := a.auth.Me(cmd.Context())
	if res.IsError() {
		return errors.New(res.Message())
	}
	u, _ := res.Data()
	fmt.Fprintf(a.out, "%s <%s>\nuser id: %d\nrole:    %s\n", u.FullName, u.Email, u.ID, u.Role)
	if u.PhoneNumber != "" {
		fmt.Fprintf(a.out, "phone:   %s\n", u.PhoneNumber)
	}
	if u.Address != "" {
		fmt.Fprintf(a.out, "address: %s\n", u.Address)
	}
	return nil
}

// readPassword masks input on a terminal and reads one line otherwise, so
// the password can be piped in.
func (a *app) readPassword(prompt string) (string, error) {
	if f, ok := a.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(a.out, prompt)
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(a.out)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(a.in).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read password: %w", err)
	}
	// Only the line terminator is stripped; blanks can be part of a password.
	return strings.TrimRight(line, "\r\n"), nil
}
