package main

import (
	"fmt"
	"io"

	"campus-events/internal/model"

	"github.com/spf13/cobra"
)

func newSignUpCmd(a *app) *cobra.Command {
	var req model.SignUpRequest
	var regID string
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			if regID != "" {
				req.RegID = &regID
			}
			return a.session.SignUp(cmd.Context(), req)
		},
	}
	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	cmd.Flags().StringVar(&req.Password, "password", "", "password (at least 6 characters)")
	cmd.Flags().StringVar(&req.FullName, "name", "", "full name")
	cmd.Flags().StringVar(&regID, "reg-id", "", "registration number")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newSignInCmd(a *app) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "signin",
		Short: "Sign in with email and password",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.session.SignIn(cmd.Context(), email, password)
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newAdminLoginCmd(a *app) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "admin-login",
		Short: "Sign in as administrator",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.session.AdminSignIn(cmd.Context(), email, password)
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "admin email")
	cmd.Flags().StringVar(&password, "password", "", "admin password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newSignOutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "signout",
		Short: "Sign out and forget the local session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.session.SignOut(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Signed out.")
			return nil
		},
	}
}

func newWhoAmICmd(a *app) *cobra.Command {
	var remote bool
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the current identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			actor := a.session.CurrentActor()
			if remote {
				var err error
				if actor, err = a.session.Refresh(cmd.Context()); err != nil {
					return err
				}
			}
			return render(a.out, a.output, actor, func(w io.Writer) {
				switch actor.Kind {
				case model.ActorAdmin:
					fmt.Fprintf(w, "Administrator (%s)\n", actor.Email)
				case model.ActorUser:
					fmt.Fprintf(w, "%s <%s>\n", actor.DisplayName, actor.Email)
				default:
					fmt.Fprintln(w, "Not signed in.")
				}
			})
		},
	}
	cmd.Flags().BoolVar(&remote, "check", false, "confirm the session with the server")
	return cmd
}
