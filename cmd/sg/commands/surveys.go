package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/surveygizmo/pkg/surveygizmo"
)

// NewSurveysCommand creates the surveys command group.
func NewSurveysCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "surveys",
		Aliases: []string{"survey"},
		Short:   "Manage surveys",
		Long:    "List, inspect, create, and delete surveys",
	}

	cmd.AddCommand(newSurveysListCommand())
	cmd.AddCommand(newSurveysGetCommand())
	cmd.AddCommand(newSurveysCreateCommand())
	cmd.AddCommand(newSurveysDeleteCommand())

	return cmd
}

// SurveysListOptions holds the options for listing surveys.
type SurveysListOptions struct {
	Filters []string
	Page    int
	PerPage int
}

func newSurveysListCommand() *cobra.Command {
	var opts SurveysListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List surveys",
		Long:  "List all surveys on the account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSurveysListCommand(opts)
		},
	}

	cmd.Flags().StringArrayVar(&opts.Filters, "filter", nil, "result filter as field:operator:value (repeatable)")
	cmd.Flags().IntVar(&opts.Page, "page", 0, "page to fetch")
	cmd.Flags().IntVar(&opts.PerPage, "per-page", 0, "results per page")

	return cmd
}

func runSurveysListCommand(opts SurveysListOptions) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	api := client.API()
	if err := ApplyFilters(api, opts.Filters); err != nil {
		return err
	}

	callOpts := &surveygizmo.CallOptions{Params: pageParams(opts.Page, opts.PerPage)}

	result, err := api.Call(contextFor(), "survey", "list", callOpts)
	if err != nil {
		return fmt.Errorf("listing surveys: %w", err)
	}

	output := viper.GetString("output")
	if output != OutputFormatTable {
		return OutputStructured(output, result)
	}

	var envelope surveygizmo.ListEnvelope
	if err := DecodeInto(result, &envelope); err != nil {
		return err
	}

	surveys, err := surveygizmo.DecodeList[surveygizmo.Survey](&envelope)
	if err != nil {
		return fmt.Errorf("decoding surveys: %w", err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Title", "Type", "Status", "Modified")

	for _, survey := range surveys {
		_ = table.Append(survey.ID, survey.Title, survey.SubType, survey.Status, survey.ModifiedOn)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	fmt.Printf("Total: %s\n", envelope.TotalCount.String())

	return nil
}

func newSurveysGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SURVEY_ID",
		Short: "Show a survey",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.API().Call(contextFor(), "survey", "get", nil, args[0])
			if err != nil {
				return fmt.Errorf("getting survey: %w", err)
			}

			return OutputStructured(viper.GetString("output"), result)
		},
	}
}

// SurveysCreateOptions holds the options for creating a survey.
type SurveysCreateOptions struct {
	Type string
}

func newSurveysCreateCommand() *cobra.Command {
	var opts SurveysCreateOptions

	cmd := &cobra.Command{
		Use:   "create TITLE",
		Short: "Create a survey",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.API().Call(contextFor(), "survey", "create", nil, args[0], opts.Type)
			if err != nil {
				return fmt.Errorf("creating survey: %w", err)
			}

			return OutputStructured(viper.GetString("output"), result)
		},
	}

	cmd.Flags().StringVar(&opts.Type, "type", "survey", "project type (survey, poll, quiz, form)")

	return cmd
}

func newSurveysDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete SURVEY_ID",
		Short: "Delete a survey",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			_, err = client.API().Call(contextFor(), "survey", "delete", nil, args[0])
			if err != nil {
				return fmt.Errorf("deleting survey: %w", err)
			}

			fmt.Printf("Survey %s deleted\n", args[0])

			return nil
		},
	}
}
