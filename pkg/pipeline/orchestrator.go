// Package pipeline drives the end-to-end extraction flow: mailbox →
// attachment extraction → document QA → row composition → table append.
package pipeline

import (
	"context"
	"fmt"

	"github.com/perarneng/decksheet/pkg/extract"
	"github.com/perarneng/decksheet/pkg/interfaces"
)

// Summary is the run transcript in numbers: how the listed messages
// fared and how many rows reached the table.
type Summary struct {
	Listed       int
	Processed    int
	Skipped      int
	Failed       int
	RowsAppended int
}

// Orchestrator processes the recent-message window strictly
// sequentially: one message, one attachment, one question at a time.
// Failures below the listing stage are contained to the message or
// attachment they occurred in; only listing failures abort the run.
type Orchestrator struct {
	mailbox interfaces.MailboxClient
	source  interfaces.AttachmentSource
	qa      interfaces.DocumentQA
	sink    interfaces.RowAppender
	logger  interfaces.Logger
	window  int64
}

func New(mailbox interfaces.MailboxClient, source interfaces.AttachmentSource, qa interfaces.DocumentQA, sink interfaces.RowAppender, log interfaces.Logger, window int64) *Orchestrator {
	return &Orchestrator{
		mailbox: mailbox,
		source:  source,
		qa:      qa,
		sink:    sink,
		logger:  log,
		window:  window,
	}
}

// Run processes up to the configured number of recent messages and
// returns the run summary. The returned error is non-nil only when the
// inbox could not be listed.
func (o *Orchestrator) Run(ctx context.Context) (*Summary, error) {
	o.logger.Info(fmt.Sprintf("Fetching message list (max %d messages)...", o.window))
	refs, err := o.mailbox.ListRecent(ctx, o.window)
	if err != nil {
		return nil, err
	}

	summary := &Summary{Listed: len(refs)}
	o.logger.Info(fmt.Sprintf("Found %d messages to process", len(refs)))

	for i, ref := range refs {
		o.logger.Info(fmt.Sprintf("Processing message %d/%d (ID: %s)", i+1, len(refs), ref.ID))
		o.processMessage(ctx, ref, summary)
	}

	o.logger.Info(fmt.Sprintf("Run completed. Processed: %d, Skipped: %d, Failed: %d, Rows appended: %d",
		summary.Processed, summary.Skipped, summary.Failed, summary.RowsAppended))
	return summary, nil
}

func (o *Orchestrator) processMessage(ctx context.Context, ref interfaces.MessageRef, summary *Summary) {
	msg, err := o.mailbox.FetchFull(ctx, ref.ID)
	if err != nil {
		o.logger.Error(fmt.Sprintf("Failed to fetch message %s: %v", ref.ID, err))
		summary.Failed++
		return
	}

	o.logger.Info(fmt.Sprintf("Email from: %s", msg.From))
	o.logger.Info(fmt.Sprintf("Subject: %s", msg.Subject))

	pdfs := o.source.PDFAttachments(msg)
	if len(pdfs) == 0 {
		o.logger.Info(fmt.Sprintf("No PDF attachments in message %s, skipping", msg.ID))
		summary.Skipped++
		return
	}

	// One message yields at most one row. Attachments are tried in
	// order until one reaches the append stage; an append failure
	// loses the row without falling back to the next attachment.
	for _, att := range pdfs {
		appended, done := o.processAttachment(ctx, msg, att)
		if !done {
			continue
		}
		if appended {
			summary.Processed++
			summary.RowsAppended++
		} else {
			summary.Failed++
		}
		return
	}

	o.logger.Warn(fmt.Sprintf("No attachment of message %s could be processed", msg.ID))
	summary.Failed++
}

// processAttachment runs one attachment through download, upload,
// questioning and append. done reports whether the append stage was
// reached; when false the caller moves on to the next attachment.
func (o *Orchestrator) processAttachment(ctx context.Context, msg *interfaces.EmailMessage, att interfaces.Attachment) (appended, done bool) {
	o.logger.Info(fmt.Sprintf("Downloading attachment %s from message %s", att.Filename, msg.ID))
	data, err := o.source.Fetch(ctx, msg.ID, att)
	if err != nil {
		o.logger.Error(fmt.Sprintf("Failed to download attachment %s: %v", att.Filename, err))
		return false, false
	}

	sourceID, err := o.qa.Upload(ctx, att.Filename, data)
	if err != nil {
		o.logger.Error(fmt.Sprintf("Failed to upload %s for analysis: %v", att.Filename, err))
		return false, false
	}
	o.logger.Info(fmt.Sprintf("Uploaded %s (source %s), extracting information...", att.Filename, sourceID))

	answers := o.askAll(ctx, sourceID)
	row := extract.ComposeRow(answers)

	updated, err := o.sink.AppendRow(ctx, row)
	if err != nil {
		o.logger.Error(fmt.Sprintf("Failed to append row for message %s: %v", msg.ID, err))
		return false, true
	}
	o.logger.Info(fmt.Sprintf("Row appended successfully: %d rows added", updated))
	return true, true
}

func (o *Orchestrator) askAll(ctx context.Context, sourceID string) map[extract.FieldKey]string {
	questions := extract.Questions()
	answers := make(map[extract.FieldKey]string, len(questions))
	for _, q := range questions {
		o.logger.Info(fmt.Sprintf("Asking: %s", q.Text))
		answer := o.qa.Ask(ctx, sourceID, q.Text)
		answers[q.Key] = answer
		o.logger.Info(fmt.Sprintf("Answer: %s", answer))
	}
	return answers
}
