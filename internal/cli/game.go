package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func newFormCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "form",
		Short: "Show the registration questions",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Form
			if err := client.Query("getFormForNewPlayer", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newValidateCmd() *cobra.Command {
	var inputType, value string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a single answer against an input type",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result StatusResult
			if err := client.Invoke("validateSingleInput", map[string]string{
				"givenInput": value,
				"type":       strings.ToUpper(inputType),
			}, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&inputType, "type", "", "Input type: NAME, POSITIVE_INT, USERNAME, PASSWORD (required)")
	cmd.Flags().StringVar(&value, "value", "", "Value to validate")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func newMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Show the activities available to the current player",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Menu
			if err := client.Query("getRelevantMenu", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newChooseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "choose <ACTIVITY>",
		Short: "Perform an activity, e.g. SLEEP or READ_A_BOOK",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result ChoiceResult
			if err := client.Invoke("handleChoice", map[string]string{
				"choice": strings.ToUpper(args[0]),
			}, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}
