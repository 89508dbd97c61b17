package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/markline-io/markline/pkg/markline"
)

// NewContentsCommand creates the contents command group.
func NewContentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "contents",
		Aliases: []string{"content"},
		Short:   "Manage saved contents",
		Long:    "Create, list, update, and delete saved content items",
	}

	cmd.AddCommand(newContentsListCommand())
	cmd.AddCommand(newContentsGetCommand())
	cmd.AddCommand(newContentsCreateCommand())
	cmd.AddCommand(newContentsUpdateCommand())
	cmd.AddCommand(newContentsDeleteCommand())

	return cmd
}

func newContentsListCommand() *cobra.Command {
	var (
		page    int
		limit   int
		tagName string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved contents",
		Long:  "List saved contents with pagination, optionally filtered by tag",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createAuthenticatedClient(ctx)
			if err != nil {
				return err
			}

			params := &markline.ListContentsParams{
				Page:  page,
				Limit: limit,
			}

			if tagName != "" {
				tag, err := client.Tags().FindByName(ctx, tagName)
				if err != nil {
					return apiFailure(err, "Failed to resolve tag")
				}

				params.TagID = &tag.ID
			}

			store := markline.NewContentStore()
			store.BeginLoading()

			result, err := client.Contents().List(ctx, params)
			if err != nil {
				store.FailWith(markline.ErrorMessage(err, "Failed to load contents"))

				return apiFailure(err, "Failed to load contents")
			}

			store.ReplacePage(result)
			state := store.Snapshot()

			output := viper.GetString("output")
			if output == "json" || output == "yaml" {
				return renderEncoded(output, result)
			}

			if len(state.Items) == 0 {
				fmt.Println("No contents found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Title", "Tag", "URL", "Description")

			for _, item := range state.Items {
				_ = table.Append(
					strconv.Itoa(item.ID),
					item.Title,
					item.Tag,
					item.URL,
					truncate(item.Body, 40),
				)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			fmt.Printf("\nPage %d of %d (%d items total)\n", state.CurrentPage, state.TotalPages, state.TotalItems)

			if state.HasNextPage {
				fmt.Printf("Use --page %d to see the next page\n", state.CurrentPage+1)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number (1-based)")
	cmd.Flags().IntVar(&limit, "limit", 10, "items per page")
	cmd.Flags().StringVar(&tagName, "tag", "", "filter by tag name")

	return cmd
}

func newContentsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show a single content item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid content id %q: %w", args[0], err)
			}

			ctx := context.Background()

			client, err := createAuthenticatedClient(ctx)
			if err != nil {
				return err
			}

			content, err := client.Contents().Get(ctx, id)
			if err != nil {
				return apiFailure(err, "Failed to load content")
			}

			output := viper.GetString("output")
			if output == "json" || output == "yaml" {
				return renderEncoded(output, content)
			}

			renderContentDetail(content)

			return nil
		},
	}
}

func newContentsCreateCommand() *cobra.Command {
	var (
		title   string
		body    string
		itemURL string
		tagName string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Save a new content item",
		Long:  "Save a new content item with a title, description, URL, and tag",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createAuthenticatedClient(ctx)
			if err != nil {
				return err
			}

			tag, err := client.Tags().FindByName(ctx, tagName)
			if err != nil {
				return apiFailure(err, "Failed to resolve tag")
			}

			request := &markline.ContentCreateRequest{
				UniqueID: uuid.NewString(),
				Title:    title,
				Body:     body,
				URL:      itemURL,
				TagID:    tag.ID,
			}

			content, err := client.Contents().Create(ctx, request)
			if err != nil {
				return apiFailure(err, "Failed to save content")
			}

			output := viper.GetString("output")
			if output == "json" || output == "yaml" {
				return renderEncoded(output, content)
			}

			fmt.Printf("Saved content %d: %s\n", content.ID, content.Title)

			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "content title")
	cmd.Flags().StringVar(&body, "description", "", "content description")
	cmd.Flags().StringVar(&itemURL, "url", "", "content URL")
	cmd.Flags().StringVar(&tagName, "tag", "", "tag name")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("tag")

	return cmd
}

func newContentsUpdateCommand() *cobra.Command {
	var (
		title   string
		body    string
		itemURL string
		tagName string
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a content item",
		Long:  "Update any of a content item's title, description, URL, or tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid content id %q: %w", args[0], err)
			}

			ctx := context.Background()

			client, err := createAuthenticatedClient(ctx)
			if err != nil {
				return err
			}

			request := &markline.ContentUpdateRequest{}

			if cmd.Flags().Changed("title") {
				request.Title = &title
			}

			if cmd.Flags().Changed("description") {
				request.Body = &body
			}

			if cmd.Flags().Changed("url") {
				request.URL = &itemURL
			}

			if cmd.Flags().Changed("tag") {
				tag, err := client.Tags().FindByName(ctx, tagName)
				if err != nil {
					return apiFailure(err, "Failed to resolve tag")
				}

				request.TagID = &tag.ID
			}

			content, err := client.Contents().Update(ctx, id, request)
			if err != nil {
				return apiFailure(err, "Failed to update content")
			}

			output := viper.GetString("output")
			if output == "json" || output == "yaml" {
				return renderEncoded(output, content)
			}

			fmt.Printf("Updated content %d: %s\n", content.ID, content.Title)

			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "content title")
	cmd.Flags().StringVar(&body, "description", "", "content description")
	cmd.Flags().StringVar(&itemURL, "url", "", "content URL")
	cmd.Flags().StringVar(&tagName, "tag", "", "tag name")

	return cmd
}

func newContentsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a content item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid content id %q: %w", args[0], err)
			}

			ctx := context.Background()

			client, err := createAuthenticatedClient(ctx)
			if err != nil {
				return err
			}

			result, err := client.Contents().Delete(ctx, id)
			if err != nil {
				return apiFailure(err, "Failed to delete content")
			}

			fmt.Println(result.Message)

			return nil
		},
	}
}

func renderContentDetail(content *markline.Content) {
	fmt.Printf("ID:       %d\n", content.ID)
	fmt.Printf("Title:    %s\n", content.Title)
	fmt.Printf("Tag:      %s\n", content.Tag)

	if content.URL != "" {
		fmt.Printf("URL:      %s\n", content.URL)
	}

	if content.Link != "" {
		fmt.Printf("Link:     %s\n", content.Link)
	}

	if content.Body != "" {
		fmt.Printf("Description:\n%s\n", content.Body)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}

	return s[:max-3] + "..."
}
