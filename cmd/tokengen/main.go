package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trackforge/timetracker-backend/internal/config"
	"github.com/trackforge/timetracker-backend/internal/domain/apitoken"
	"github.com/trackforge/timetracker-backend/internal/pkg/database"
	"github.com/trackforge/timetracker-backend/internal/pkg/token"
	"github.com/trackforge/timetracker-backend/internal/repository/postgresql"
)

var rootCmd = &cobra.Command{
	Use:   "tokengen",
	Short: "Manage API tokens for the time tracker backend",
	Long: `tokengen creates and lists the static API tokens that desktop
clients present in the Authorization header.`,
}

var createDescription string

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Generate and store a new API token",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepository()
		if err != nil {
			return err
		}

		value, err := token.NewAPIToken()
		if err != nil {
			return fmt.Errorf("failed to generate token: %w", err)
		}

		newToken := apitoken.APIToken{Token: value}
		if createDescription != "" {
			newToken.Description = &createDescription
		}

		created, err := repo.Create(context.Background(), newToken)
		if err != nil {
			return fmt.Errorf("failed to store token: %w", err)
		}

		fmt.Printf("Created token #%d\n%s\n", created.ID, created.Token)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored API tokens",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepository()
		if err != nil {
			return err
		}

		tokens, err := repo.List(context.Background())
		if err != nil {
			return fmt.Errorf("failed to list tokens: %w", err)
		}

		if len(tokens) == 0 {
			fmt.Println("No API tokens stored.")
			return nil
		}

		for _, t := range tokens {
			description := ""
			if t.Description != nil {
				description = *t.Description
			}
			fmt.Printf("%d\t%s\t%s\t%s\n", t.ID, t.Token, t.CreatedAt.Format("2006-01-02 15:04"), description)
		}
		return nil
	},
}

func openRepository() (apitoken.APITokenRepository, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return postgresql.NewAPITokenRepository(db), nil
}

func init() {
	createCmd.Flags().StringVarP(&createDescription, "description", "d", "", "optional note describing who uses the token")
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(listCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
