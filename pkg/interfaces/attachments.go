package interfaces

import "context"

// AttachmentSource selects a message's PDF attachments and fetches
// their bytes on demand.
type AttachmentSource interface {
	PDFAttachments(msg *EmailMessage) []Attachment
	Fetch(ctx context.Context, messageID string, att Attachment) ([]byte, error)
}
