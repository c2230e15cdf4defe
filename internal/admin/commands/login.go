package commands

import (
	"context"
	"fmt"

	"PortfolioDesk/internal/config"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Login and store auth cookie" }
func (loginCmd) Usage() string       { return "login <login> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	login, password := args[0], args[1]

	c := newClient(cfg)
	token, err := c.Login(ctx, login, password)
	if err != nil {
		return err
	}
	if err := sessionStore(cfg).SaveSession(login, token); err != nil {
		return fmt.Errorf("saving auth: %w", err)
	}
	fmt.Fprintln(Out, "Logged in successfully")
	return nil
}

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Create an account and login" }
func (registerCmd) Usage() string       { return "register <login> <password>" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	login, password := args[0], args[1]

	c := newClient(cfg)
	token, err := c.Register(ctx, login, password)
	if err != nil {
		return err
	}
	if err := sessionStore(cfg).SaveSession(login, token); err != nil {
		return fmt.Errorf("saving auth: %w", err)
	}
	fmt.Fprintln(Out, "Registered and logged in")
	return nil
}

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Logout and forget stored session" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	// Сервер может быть недоступен, локальную сессию чистим в любом случае.
	_ = newClient(cfg).Logout(ctx)
	if err := sessionStore(cfg).Clear(); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Logged out")
	return nil
}

func init() {
	RegisterCmd(loginCmd{})
	RegisterCmd(registerCmd{})
	RegisterCmd(logoutCmd{})
}
