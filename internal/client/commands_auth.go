package client

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-task-tamer/internal/adapter"
	"github.com/MKhiriev/go-task-tamer/models"
)

type passwordFlags struct {
	password      string
	passwordStdin bool
}

func (p *passwordFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.password, "password", "", "account password")
	cmd.Flags().BoolVar(&p.passwordStdin, "password-stdin", false, "read the password from stdin")
}

// resolve returns the password from the flag or the first line of in.
func (p *passwordFlags) resolve(in io.Reader) (string, error) {
	if p.passwordStdin {
		scanner := bufio.NewScanner(in)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", fmt.Errorf("error reading password: %w", err)
			}
			return "", ErrPasswordRequired
		}
		p.password = strings.TrimRight(scanner.Text(), "\r")
	}

	if p.password == "" {
		return "", ErrPasswordRequired
	}
	return p.password, nil
}

func (a *App) registerCommand() *cobra.Command {
	var (
		request  models.RegisterRequest
		password passwordFlags
	)

	cmd := &cobra.Command{
		Use:   "register --username <name> --email <email>",
		Short: "Create an account and log in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if request.Password, err = password.resolve(cmd.InOrStdin()); err != nil {
				return err
			}

			cfg, srv, err := a.connect()
			if err != nil {
				return err
			}

			user, err := srv.Register(cmd.Context(), request)
			if err != nil {
				return err
			}
			if err = a.saveToken(cfg, srv.Token(), user.Email); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "registered %s <%s>\n", user.Username, user.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&request.Username, "username", "", "unique user name")
	cmd.Flags().StringVar(&request.Email, "email", "", "email used to log in")
	cmd.Flags().StringVar(&request.Name, "name", "", "display name")
	password.bind(cmd)

	return cmd
}

func (a *App) loginCommand() *cobra.Command {
	var (
		request  models.LoginRequest
		password passwordFlags
	)

	cmd := &cobra.Command{
		Use:   "login --email <email>",
		Short: "Log in and save the token to the profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if request.Password, err = password.resolve(cmd.InOrStdin()); err != nil {
				return err
			}

			cfg, srv, err := a.connect()
			if err != nil {
				return err
			}
			if request.Email == "" {
				request.Email = cfg.Email
			}

			user, err := srv.Login(cmd.Context(), request)
			if err != nil {
				return err
			}
			if err = a.saveToken(cfg, srv.Token(), user.Email); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s <%s>\n", user.Username, user.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&request.Email, "email", "", "account email (defaults to the last one used)")
	password.bind(cmd)

	return cmd
}

func (a *App) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.profile()
			if err != nil {
				return err
			}
			if err = a.saveToken(cfg, "", cfg.Email); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func (a *App) whoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withServer(cmd, func(ctx context.Context, srv adapter.ServerAdapter) error {
				user, err := srv.Me(ctx)
				if err != nil {
					return err
				}

				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\nname: %s\nid: %s\n", user.Username, user.Email, user.Name, user.ID)
				return nil
			})
		},
	}
}
