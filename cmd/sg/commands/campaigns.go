package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/surveygizmo/pkg/surveygizmo"
)

// NewCampaignsCommand creates the campaigns command group.
func NewCampaignsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "campaigns",
		Aliases: []string{"campaign"},
		Short:   "Manage survey campaigns",
		Long:    "List and inspect survey distribution links and campaigns",
	}

	cmd.AddCommand(newCampaignsListCommand())
	cmd.AddCommand(newCampaignsGetCommand())

	return cmd
}

func newCampaignsListCommand() *cobra.Command {
	var filters []string

	cmd := &cobra.Command{
		Use:   "list SURVEY_ID",
		Short: "List campaigns for a survey",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCampaignsListCommand(args[0], filters)
		},
	}

	cmd.Flags().StringArrayVar(&filters, "filter", nil, "result filter as field:operator:value (repeatable)")

	return cmd
}

func runCampaignsListCommand(surveyID string, filters []string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	api := client.API()
	if err := ApplyFilters(api, filters); err != nil {
		return err
	}

	result, err := api.Call(contextFor(), "surveycampaign", "list", nil, surveyID)
	if err != nil {
		return fmt.Errorf("listing campaigns: %w", err)
	}

	output := viper.GetString("output")
	if output != OutputFormatTable {
		return OutputStructured(output, result)
	}

	var envelope surveygizmo.ListEnvelope
	if err := DecodeInto(result, &envelope); err != nil {
		return err
	}

	campaigns, err := surveygizmo.DecodeList[surveygizmo.Campaign](&envelope)
	if err != nil {
		return fmt.Errorf("decoding campaigns: %w", err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Type", "Status", "Created")

	for _, campaign := range campaigns {
		_ = table.Append(campaign.ID, campaign.Name, campaign.SubType, campaign.Status, campaign.DateCreated)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newCampaignsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SURVEY_ID CAMPAIGN_ID",
		Short: "Show a campaign",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.API().Call(contextFor(), "surveycampaign", "get", nil, args[0], args[1])
			if err != nil {
				return fmt.Errorf("getting campaign: %w", err)
			}

			return OutputStructured(viper.GetString("output"), result)
		},
	}
}
