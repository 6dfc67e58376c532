// Package main provides the portfolioctl binary, a terminal front end
// for the portfolio API built on the client package.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"portfolio-api/client"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type cliDeps struct {
	client   *client.Client
	notifier client.Notifier
}

func rootCmd() *cobra.Command {
	var baseURL string

	deps := &cliDeps{}

	cmd := &cobra.Command{
		Use:   "portfolioctl",
		Short: "Terminal client for the portfolio API",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			url := strings.TrimSpace(baseURL)
			if url == "" {
				url = strings.TrimSpace(os.Getenv("PORTFOLIO_API_URL"))
			}
			if url == "" {
				url = "http://localhost:8000"
			}
			deps.client = client.New(url, log.New(os.Stderr, "", log.LstdFlags))
			deps.notifier = terminalNotifier()
		},
	}

	cmd.PersistentFlags().StringVar(&baseURL, "api-url", "", "portfolio API base URL (default PORTFOLIO_API_URL or http://localhost:8000)")

	cmd.AddCommand(snapshotCmd(deps))
	cmd.AddCommand(proceduresCmd(deps))
	cmd.AddCommand(contactCmd(deps))

	return cmd
}

func terminalNotifier() client.Notifier {
	return client.NotifierFunc(func(n client.Notification) {
		prefix := "INFO"
		if n.Destructive {
			prefix = "ERROR"
		}
		fmt.Fprintf(os.Stderr, "[%s] %s: %s\n", prefix, n.Title, n.Description)
	})
}

func cmdContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}

func snapshotCmd(deps *cliDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot",
		Short: "Fetch all portfolio resources and print a summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := cmdContext()
			defer cancel()

			store := client.NewStore(deps.client, deps.notifier)
			if err := store.Refetch(ctx); err != nil {
				return err
			}

			snap := store.Snapshot()
			d := snap.Data
			if d.PersonalInfo != nil {
				fmt.Printf("%s - %s\n", d.PersonalInfo.Name, d.PersonalInfo.Title)
			}
			fmt.Printf("education:      %d\n", len(d.Education))
			fmt.Printf("skills:         %d\n", len(d.Skills))
			fmt.Printf("projects:       %d\n", len(d.Projects))
			fmt.Printf("experience:     %d\n", len(d.Experience))
			fmt.Printf("certifications: %d\n", len(d.Certifications))
			fmt.Printf("testimonials:   %d\n", len(d.Testimonials))
			return nil
		},
	}
}

func proceduresCmd(deps *cliDeps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "procedures",
		Short: "List, search, create and delete procedures",
	}

	cmd.AddCommand(proceduresListCmd(deps))
	cmd.AddCommand(proceduresShowCmd(deps))
	cmd.AddCommand(proceduresCreateCmd(deps))
	cmd.AddCommand(proceduresDeleteCmd(deps))
	return cmd
}

func proceduresListCmd(deps *cliDeps) *cobra.Command {
	var (
		search   string
		category string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List procedures, optionally filtered by search term and category",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := cmdContext()
			defer cancel()

			browser := client.NewProcedureBrowser(deps.client, deps.notifier, nil)
			if err := browser.Load(ctx); err != nil {
				return err
			}
			browser.SetSearchTerm(search)
			browser.SetCategory(category)

			items := browser.Filtered()
			if len(items) == 0 {
				fmt.Println("no procedures found")
				return nil
			}
			for _, p := range items {
				fmt.Printf("%s  [%s]  %s  tags=%s\n", p.ID, p.Category, p.Title, strings.Join(p.Tags, ","))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "case-insensitive term matched against title, description and tags")
	cmd.Flags().StringVar(&category, "category", "all", "category filter ("+strings.Join(client.ProcedureCategories, ", ")+" or all)")
	return cmd
}

func proceduresShowCmd(deps *cliDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one procedure from the fetched list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := cmdContext()
			defer cancel()

			browser := client.NewProcedureBrowser(deps.client, deps.notifier, nil)
			if err := browser.Load(ctx); err != nil {
				return err
			}

			p, ok := browser.View(args[0])
			if !ok {
				return fmt.Errorf("procedure %s not found", args[0])
			}
			fmt.Printf("Title:       %s\n", p.Title)
			fmt.Printf("Category:    %s\n", p.Category)
			fmt.Printf("Tags:        %s\n", strings.Join(p.Tags, ", "))
			fmt.Printf("Created at:  %s\n", p.CreatedAt)
			fmt.Printf("Description: %s\n\n", p.Description)
			fmt.Println(p.Content)
			return nil
		},
	}
}

func proceduresCreateCmd(deps *cliDeps) *cobra.Command {
	var (
		title       string
		description string
		content     string
		category    string
		tags        string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a procedure",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := cmdContext()
			defer cancel()

			browser := client.NewProcedureBrowser(deps.client, deps.notifier, nil)
			ok := browser.Create(ctx, client.ProcedureDraft{
				Title:       title,
				Description: description,
				Content:     content,
				Category:    category,
				Tags:        client.ParseTags(tags),
			})
			if !ok {
				return fmt.Errorf("create failed")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "procedure title (required)")
	cmd.Flags().StringVar(&description, "description", "", "short description (required)")
	cmd.Flags().StringVar(&content, "content", "", "procedure body (required)")
	cmd.Flags().StringVar(&category, "category", "", "category ("+strings.Join(client.ProcedureCategories, ", ")+")")
	cmd.Flags().StringVar(&tags, "tags", "", "comma-separated tags")
	return cmd
}

func proceduresDeleteCmd(deps *cliDeps) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a procedure after confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := cmdContext()
			defer cancel()

			confirmer := stdinConfirmer()
			if yes {
				confirmer = client.ConfirmerFunc(func(string) bool { return true })
			}

			browser := client.NewProcedureBrowser(deps.client, deps.notifier, confirmer)
			if err := browser.Load(ctx); err != nil {
				return err
			}
			if !browser.Delete(ctx, args[0]) {
				return fmt.Errorf("delete cancelled or failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func stdinConfirmer() client.Confirmer {
	return client.ConfirmerFunc(func(prompt string) bool {
		fmt.Fprintf(os.Stderr, "%s [y/N] ", prompt)
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes" || answer == "o" || answer == "oui"
	})
}

func contactCmd(deps *cliDeps) *cobra.Command {
	var (
		name    string
		email   string
		message string
	)

	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Send a contact message",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := cmdContext()
			defer cancel()

			store := client.NewStore(deps.client, deps.notifier)
			if !store.SubmitContactMessage(ctx, client.ContactMessageInput{
				Name:    name,
				Email:   email,
				Message: message,
			}) {
				return fmt.Errorf("message not sent")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "sender name")
	cmd.Flags().StringVar(&email, "email", "", "sender email")
	cmd.Flags().StringVar(&message, "message", "", "message body")
	return cmd
}
