package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/lifegame/internal/model"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player management commands",
	}

	cmd.AddCommand(newPlayerRegisterCmd())
	cmd.AddCommand(newPlayerLoginCmd())
	cmd.AddCommand(newPlayerDetailsCmd())
	cmd.AddCommand(newPlayerMeCmd())

	return cmd
}

func newPlayerRegisterCmd() *cobra.Command {
	questions := model.Questions()
	answers := make([]string, len(questions))

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new player",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := make(map[string]string, len(questions))
			for i, q := range questions {
				if cmd.Flags().Changed(string(q.Field)) {
					req[string(q.Field)] = answers[i]
				}
			}

			var result Entry
			if err := client.Invoke("createNewPlayer", req, &result); err != nil {
				return err
			}

			if err := cfg.SaveToken(result.SessionToken); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	// Missing answers are left for the server to report.
	for i, q := range questions {
		cmd.Flags().StringVar(&answers[i], string(q.Field), "", q.Question)
	}

	return cmd
}

func newPlayerLoginCmd() *cobra.Command {
	var user, pass string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login with an existing player",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Entry
			if err := client.Invoke("login", map[string]string{
				"username": user,
				"password": pass,
			}, &result); err != nil {
				return err
			}

			if err := cfg.SaveToken(result.SessionToken); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Username (required)")
	cmd.Flags().StringVar(&pass, "pass", "", "Password (required)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("pass")

	return cmd
}

func newPlayerDetailsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "details",
		Short: "Show the greeting details of the current player",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Details
			if err := client.Query("getBasicDetailsForLogin", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newPlayerMeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the full state of the current player",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result PlayerResult
			if err := client.Query("getPlayerData", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}
