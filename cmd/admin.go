package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"AgenciaContable/internal/auth"
	"AgenciaContable/internal/db"
	"AgenciaContable/internal/models"
)

/* ========= УПРАВЛЕНИЕ АДМИНАМИ ИЗ КОНСОЛИ ========= */

func newAdminCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Учётные записи администраторов",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Показать всех администраторов",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			admins, err := store.ListAdmins(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tUSERNAME\tSUPER\tCREATED")
			for _, ad := range admins {
				fmt.Fprintf(tw, "%d\t%s\t%t\t%s\n", ad.ID, ad.Username, ad.IsSuper, ad.CreatedAt.Format("2006-01-02"))
			}
			return tw.Flush()
		},
	}

	var password string

	passwd := &cobra.Command{
		Use:   "passwd <username>",
		Short: "Сменить пароль администратора",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			ad, err := store.AdminByUsername(ctx, args[0])
			if errors.Is(err, db.ErrNotFound) {
				return fmt.Errorf("admin %q not found", args[0])
			} else if err != nil {
				return err
			}
			hash, err := passwordHash(cmd, password)
			if err != nil {
				return err
			}
			if err := store.SetAdminPassword(ctx, ad.ID, hash); err != nil {
				return err
			}
			a.logger.Info("admin password changed", "username", ad.Username)
			return nil
		},
	}

	create := &cobra.Command{
		Use:   "create <username>",
		Short: "Создать обычного администратора",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			username := strings.TrimSpace(args[0])
			if username == "" {
				return errors.New("username must not be empty")
			}
			store, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			hash, err := passwordHash(cmd, password)
			if err != nil {
				return err
			}
			ad := &models.Admin{Username: username, HashedPassword: hash}
			if err := store.CreateAdmin(ctx, ad); errors.Is(err, db.ErrDuplicate) {
				return fmt.Errorf("admin %q already exists", username)
			} else if err != nil {
				return err
			}
			a.logger.Info("admin created", "username", ad.Username, "id", ad.ID)
			return nil
		},
	}

	for _, c := range []*cobra.Command{passwd, create} {
		c.Flags().StringVar(&password, "password", "", "пароль (иначе спросим в терминале)")
	}
	cmd.AddCommand(list, passwd, create)
	return cmd
}

func newHashPasswordCmd() *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "hash-password",
		Short: "Напечатать bcrypt-хэш пароля",
		Args:  cobra.NoArgs,
		// конфиг не нужен
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			hash, err := passwordHash(cmd, password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "пароль (иначе спросим в терминале)")
	return cmd
}

func passwordHash(cmd *cobra.Command, flagValue string) (string, error) {
	password := flagValue
	if password == "" {
		var err error
		password, err = readPassword(cmd.InOrStdin(), cmd.ErrOrStderr())
		if err != nil {
			return "", err
		}
	}
	if password == "" {
		return "", errors.New("password must not be empty")
	}
	return auth.HashPassword(password)
}

// readPassword: в терминале — без эха и с подтверждением, из пайпа — первая строка.
func readPassword(in io.Reader, out io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd := int(f.Fd())
		fmt.Fprint(out, "Password: ")
		first, err := term.ReadPassword(fd)
		fmt.Fprintln(out)
		if err != nil {
			return "", err
		}
		fmt.Fprint(out, "Repeat: ")
		second, err := term.ReadPassword(fd)
		fmt.Fprintln(out)
		if err != nil {
			return "", err
		}
		if string(first) != string(second) {
			return "", errors.New("passwords do not match")
		}
		return string(first), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
