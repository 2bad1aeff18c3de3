package gmail

import (
	"context"
	"fmt"
	"strings"

	"github.com/perarneng/decksheet/pkg/interfaces"
)

// Extractor selects the PDF attachments of a message and fetches their
// bytes on demand. Detection is by filename suffix only; the bytes are
// never sniffed.
type Extractor struct {
	mailbox interfaces.MailboxClient
	logger  interfaces.Logger
}

func NewExtractor(mailbox interfaces.MailboxClient, log interfaces.Logger) interfaces.AttachmentSource {
	return &Extractor{mailbox: mailbox, logger: log}
}

// PDFAttachments returns the message's attachments whose filename ends
// with .pdf, case-insensitively. Parts without a resolvable attachment
// id are skipped.
func (e *Extractor) PDFAttachments(msg *interfaces.EmailMessage) []interfaces.Attachment {
	var pdfs []interfaces.Attachment
	for _, att := range msg.Attachments {
		if !strings.HasSuffix(strings.ToLower(att.Filename), ".pdf") {
			continue
		}
		if att.ID == "" {
			e.logger.Debug(fmt.Sprintf("Skipping PDF part %q of message %s: no attachment id", att.Filename, msg.ID))
			continue
		}
		pdfs = append(pdfs, att)
	}
	return pdfs
}

// Fetch downloads the bytes of one attachment.
func (e *Extractor) Fetch(ctx context.Context, messageID string, att interfaces.Attachment) ([]byte, error) {
	return e.mailbox.DownloadAttachment(ctx, messageID, att.ID)
}
