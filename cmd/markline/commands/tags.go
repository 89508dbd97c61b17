package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewTagsCommand creates the tags command.
func NewTagsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List available tags",
		Long:  "List the category tags that can be attached to contents",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createAuthenticatedClient(ctx)
			if err != nil {
				return err
			}

			tags, err := client.Tags().List(ctx)
			if err != nil {
				return apiFailure(err, "Failed to load tags")
			}

			output := viper.GetString("output")
			if output == "json" || output == "yaml" {
				return renderEncoded(output, tags)
			}

			if len(tags) == 0 {
				fmt.Println("No tags found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name")

			for _, tag := range tags {
				_ = table.Append(strconv.Itoa(tag.ID), tag.Name)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}
