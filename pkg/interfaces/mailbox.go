package interfaces

import "context"

// MessageRef is a lightweight handle to a message in the mailbox,
// produced by ListRecent and consumed once by FetchFull.
type MessageRef struct {
	ID string
}

// Attachment describes a declared attachment part of a message. The
// payload bytes are not held here; they are downloaded on demand.
type Attachment struct {
	ID       string
	Filename string
	MimeType string
}

// EmailMessage is an immutable snapshot of one fetched message.
type EmailMessage struct {
	ID          string
	Subject     string
	From        string
	Body        string
	Attachments []Attachment
}

type MailboxClient interface {
	ListRecent(ctx context.Context, maxResults int64) ([]MessageRef, error)
	FetchFull(ctx context.Context, messageID string) (*EmailMessage, error)
	DownloadAttachment(ctx context.Context, messageID, attachmentID string) ([]byte, error)
}
