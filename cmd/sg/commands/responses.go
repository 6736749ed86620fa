package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/surveygizmo/pkg/surveygizmo"
)

// NewResponsesCommand creates the responses command group.
func NewResponsesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "responses",
		Aliases: []string{"response"},
		Short:   "Manage survey responses",
		Long:    "List and inspect submitted survey responses",
	}

	cmd.AddCommand(newResponsesListCommand())
	cmd.AddCommand(newResponsesGetCommand())

	return cmd
}

// ResponsesListOptions holds the options for listing survey responses.
type ResponsesListOptions struct {
	Filters []string
	Keep    bool
	Page    int
	PerPage int
}

func newResponsesListCommand() *cobra.Command {
	var opts ResponsesListOptions

	cmd := &cobra.Command{
		Use:   "list SURVEY_ID",
		Short: "List responses for a survey",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResponsesListCommand(args[0], opts)
		},
	}

	cmd.Flags().StringArrayVar(&opts.Filters, "filter", nil, "result filter as field:operator:value (repeatable)")
	cmd.Flags().BoolVar(&opts.Keep, "keep", false, "retain filters for the next call")
	cmd.Flags().IntVar(&opts.Page, "page", 0, "page to fetch")
	cmd.Flags().IntVar(&opts.PerPage, "per-page", 0, "results per page")

	return cmd
}

func runResponsesListCommand(surveyID string, opts ResponsesListOptions) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	api := client.API()
	if err := ApplyFilters(api, opts.Filters); err != nil {
		return err
	}

	callOpts := &surveygizmo.CallOptions{
		Keep:   opts.Keep,
		Params: pageParams(opts.Page, opts.PerPage),
	}

	result, err := api.Call(contextFor(), "surveyresponse", "list", callOpts, surveyID)
	if err != nil {
		return fmt.Errorf("listing responses: %w", err)
	}

	output := viper.GetString("output")
	if output != OutputFormatTable {
		return OutputStructured(output, result)
	}

	var envelope surveygizmo.ListEnvelope
	if err := DecodeInto(result, &envelope); err != nil {
		return err
	}

	responses, err := surveygizmo.DecodeList[surveygizmo.SurveyResponse](&envelope)
	if err != nil {
		return fmt.Errorf("decoding responses: %w", err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Status", "Submitted", "Contact", "Test Data")

	for _, response := range responses {
		_ = table.Append(response.ID, response.Status, response.DateSubmitted, response.ContactID, response.IsTestData)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	fmt.Printf("Total: %s\n", envelope.TotalCount.String())

	return nil
}

func newResponsesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SURVEY_ID RESPONSE_ID",
		Short: "Show a single response",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.API().Call(contextFor(), "surveyresponse", "get", nil, args[0], args[1])
			if err != nil {
				return fmt.Errorf("getting response: %w", err)
			}

			return OutputStructured(viper.GetString("output"), result)
		},
	}
}
