package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	gmailv1 "google.golang.org/api/gmail/v1"
	sheetsv4 "google.golang.org/api/sheets/v4"

	"github.com/perarneng/decksheet/pkg/auth"
	"github.com/perarneng/decksheet/pkg/chatpdf"
	"github.com/perarneng/decksheet/pkg/gmail"
	"github.com/perarneng/decksheet/pkg/logger"
	"github.com/perarneng/decksheet/pkg/pipeline"
	"github.com/perarneng/decksheet/pkg/sheets"
)

var (
	spreadsheetID string
	writeRange    string
	mailbox       string
	count         int
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Process recent emails and append extracted deck data to the sheet",
	Long: `Process scans the most recent inbox emails for PDF attachments, runs
each PDF through the document QA provider, and appends one row per
processed email to the configured spreadsheet.`,
	RunE: runProcess,
}

func init() {
	processCmd.Flags().StringVarP(&spreadsheetID, "spreadsheet-id", "s", "", "Target spreadsheet ID (required)")
	processCmd.Flags().StringVarP(&writeRange, "range", "r", "Sheet1!A:K", "Destination range for appended rows")
	processCmd.Flags().StringVarP(&mailbox, "mailbox", "m", "INBOX", "Gmail mailbox/label to scan")
	processCmd.Flags().IntVarP(&count, "count", "c", 5, "Number of recent emails to check")
	processCmd.MarkFlagRequired("spreadsheet-id")

	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	if count <= 0 {
		return fmt.Errorf("count must be a positive integer, got %d", count)
	}

	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Don't fail if .env doesn't exist, just continue
	}

	log := logger.NewLogger()

	apiKey := os.Getenv("CHATPDF_API_KEY")
	if apiKey == "" {
		log.Error("CHATPDF_API_KEY environment variable not set")
		return fmt.Errorf("CHATPDF_API_KEY environment variable not set")
	}

	credentialsFile := os.Getenv("GOOGLE_CREDENTIALS_FILE")
	if credentialsFile == "" {
		log.Error("GOOGLE_CREDENTIALS_FILE environment variable not set")
		return fmt.Errorf("GOOGLE_CREDENTIALS_FILE environment variable not set")
	}

	tokenFile := os.Getenv("GOOGLE_TOKEN_FILE")
	if tokenFile == "" {
		tokenFile = "token.json"
	}

	oauthConfig, err := auth.ConfigFromFile(credentialsFile, gmailv1.GmailReadonlyScope, sheetsv4.SpreadsheetsScope)
	if err != nil {
		log.Error(fmt.Sprintf("Failed to load client secret: %v", err))
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	log.Info("Authenticating against Google APIs...")
	broker := auth.NewBroker(oauthConfig, auth.NewFileTokenStore(tokenFile), auth.NewBrowserFlow(os.Stdin, os.Stdout), log)
	httpClient, err := broker.HTTPClient(ctx)
	if err != nil {
		log.Error(fmt.Sprintf("Authentication failed: %v", err))
		return err
	}

	mailboxClient, err := gmail.NewClient(ctx, httpClient, mailbox)
	if err != nil {
		log.Error(fmt.Sprintf("Failed to connect to Gmail: %v", err))
		return err
	}
	log.Info(fmt.Sprintf("Connected successfully, scanning mailbox: %s (max %d emails)", mailbox, count))

	sink, err := sheets.NewSink(ctx, httpClient, spreadsheetID, writeRange)
	if err != nil {
		log.Error(fmt.Sprintf("Failed to connect to Sheets: %v", err))
		return err
	}

	qa := chatpdf.NewClient(chatpdf.Config{APIKey: apiKey}, log)
	extractor := gmail.NewExtractor(mailboxClient, log)

	orchestrator := pipeline.New(mailboxClient, extractor, qa, sink, log, int64(count))
	summary, err := orchestrator.Run(ctx)
	if err != nil {
		log.Error(fmt.Sprintf("Run aborted: %v", err))
		return err
	}

	log.Info(fmt.Sprintf("Done. %d messages listed, %d rows appended to %s",
		summary.Listed, summary.RowsAppended, spreadsheetID))
	return nil
}
