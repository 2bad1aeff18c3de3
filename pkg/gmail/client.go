package gmail

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/perarneng/decksheet/pkg/interfaces"
)

const userID = "me"

// Fallback header values when a message carries no Subject/From header.
const (
	NoSubject = "No Subject"
	NoSender  = "No Sender"
)

var (
	// ErrList marks failures listing the inbox. Fatal to a run.
	ErrList = errors.New("message listing failed")
	// ErrFetch marks failures retrieving a full message. Message-scoped.
	ErrFetch = errors.New("message fetch failed")
	// ErrAttachment marks failures downloading attachment bytes.
	// Attachment-scoped.
	ErrAttachment = errors.New("attachment download failed")
)

type Client struct {
	service *gmail.Service
	mailbox string
}

// NewClient builds a mailbox client on top of an authorized HTTP
// client. Listing is scoped to the given mailbox label.
func NewClient(ctx context.Context, httpClient *http.Client, mailbox string) (interfaces.MailboxClient, error) {
	srv, err := gmail.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("unable to create Gmail service: %v", err)
	}
	return &Client{service: srv, mailbox: mailbox}, nil
}

// ListRecent returns up to maxResults most recent message references
// in the configured mailbox, newest first. An empty inbox yields an
// empty slice, not an error.
func (c *Client) ListRecent(ctx context.Context, maxResults int64) ([]interfaces.MessageRef, error) {
	resp, err := c.service.Users.Messages.List(userID).LabelIds(c.mailbox).MaxResults(maxResults).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrList, err)
	}

	refs := make([]interfaces.MessageRef, 0, len(resp.Messages))
	for _, msg := range resp.Messages {
		refs = append(refs, interfaces.MessageRef{ID: msg.Id})
	}
	return refs, nil
}

func (c *Client) FetchFull(ctx context.Context, messageID string) (*interfaces.EmailMessage, error) {
	msg, err := c.service.Users.Messages.Get(userID, messageID).Format("full").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: message %s: %v", ErrFetch, messageID, err)
	}
	return parseMessage(msg), nil
}

func (c *Client) DownloadAttachment(ctx context.Context, messageID, attachmentID string) ([]byte, error) {
	att, err := c.service.Users.Messages.Attachments.Get(userID, messageID, attachmentID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: message %s: %v", ErrAttachment, messageID, err)
	}
	data, err := base64.URLEncoding.DecodeString(att.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: message %s: decode: %v", ErrAttachment, messageID, err)
	}
	return data, nil
}

// parseMessage flattens the Gmail message payload into the snapshot the
// pipeline works with. Only top-level parts are scanned for attachments;
// single-body messages therefore carry none.
func parseMessage(msg *gmail.Message) *interfaces.EmailMessage {
	email := &interfaces.EmailMessage{
		ID:      msg.Id,
		Subject: NoSubject,
		From:    NoSender,
	}
	if msg.Payload == nil {
		return email
	}

	subjectFound, fromFound := false, false
	for _, header := range msg.Payload.Headers {
		switch strings.ToLower(header.Name) {
		case "subject":
			if !subjectFound {
				email.Subject = header.Value
				subjectFound = true
			}
		case "from":
			if !fromFound {
				email.From = header.Value
				fromFound = true
			}
		}
	}

	email.Body = extractBody(msg.Payload)

	for _, part := range msg.Payload.Parts {
		if part.Filename == "" {
			continue
		}
		att := interfaces.Attachment{
			Filename: part.Filename,
			MimeType: part.MimeType,
		}
		if part.Body != nil {
			att.ID = part.Body.AttachmentId
		}
		email.Attachments = append(email.Attachments, att)
	}

	return email
}

func extractBody(payload *gmail.MessagePart) string {
	for _, part := range payload.Parts {
		if part.MimeType == "text/plain" && part.Body != nil && part.Body.Data != "" {
			if data, err := base64.URLEncoding.DecodeString(part.Body.Data); err == nil {
				return string(data)
			}
		}
	}
	if payload.Body != nil && payload.Body.Data != "" {
		if data, err := base64.URLEncoding.DecodeString(payload.Body.Data); err == nil {
			return string(data)
		}
	}
	return ""
}
