package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"foxy-admin/config"
	"foxy-admin/models"
	"foxy-admin/store"
	"foxy-admin/utils"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "cli",
		Short:        "Foxy Fabrications admin tools",
		SilenceUsage: true,
	}
	root.AddCommand(newAddUserCmd())
	return root
}

func newAddUserCmd() *cobra.Command {
	var username, password string
	var admin bool

	cmd := &cobra.Command{
		Use:   "add-user",
		Short: "Create a staff account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(username) == "" || password == "" {
				return fmt.Errorf("username and password are required")
			}
			return createUser(cmd.Context(), username, password, admin)
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "Username for the new user")
	cmd.Flags().StringVar(&password, "password", "", "Password for the new user")
	cmd.Flags().BoolVar(&admin, "admin", false, "Grant admin privileges")
	return cmd
}

func createUser(ctx context.Context, username, password string, admin bool) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	client, err := utils.ConnectDB(ctx, cfg.MongoURI)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	defer client.Disconnect(context.Background())

	users := &store.MongoUserRepository{Collection: client.Database(cfg.Database).Collection(store.UsersCollection)}
	id, err := users.Create(ctx, models.User{
		Username:     username,
		PasswordHash: utils.HashPassword(password),
		IsAdmin:      admin,
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	fmt.Printf("User '%s' created successfully (id %s, admin %t).\n", username, id.Hex(), admin)
	return nil
}
