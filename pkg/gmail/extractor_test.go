package gmail

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perarneng/decksheet/pkg/interfaces"
	"github.com/perarneng/decksheet/pkg/logger"
)

type fakeMailbox struct {
	downloads map[string][]byte
	calls     int
}

func (f *fakeMailbox) ListRecent(ctx context.Context, maxResults int64) ([]interfaces.MessageRef, error) {
	return nil, nil
}

func (f *fakeMailbox) FetchFull(ctx context.Context, messageID string) (*interfaces.EmailMessage, error) {
	return nil, nil
}

func (f *fakeMailbox) DownloadAttachment(ctx context.Context, messageID, attachmentID string) ([]byte, error) {
	f.calls++
	data, ok := f.downloads[attachmentID]
	if !ok {
		return nil, fmt.Errorf("%w: message %s", ErrAttachment, messageID)
	}
	return data, nil
}

func newTestExtractor(mb *fakeMailbox) interfaces.AttachmentSource {
	return NewExtractor(mb, logger.NewNopLogger())
}

func TestPDFAttachments_SuffixFilter(t *testing.T) {
	extractor := newTestExtractor(&fakeMailbox{})
	msg := &interfaces.EmailMessage{
		ID: "m1",
		Attachments: []interfaces.Attachment{
			{ID: "a1", Filename: "deck.pdf"},
			{ID: "a2", Filename: "DECK2.PDF"},
			{ID: "a3", Filename: "notes.txt"},
			{ID: "a4", Filename: "archive.pdf.zip"},
			{ID: "a5", Filename: "Deck_v3.Pdf"},
		},
	}

	pdfs := extractor.PDFAttachments(msg)

	require.Len(t, pdfs, 3)
	assert.Equal(t, "deck.pdf", pdfs[0].Filename)
	assert.Equal(t, "DECK2.PDF", pdfs[1].Filename)
	assert.Equal(t, "Deck_v3.Pdf", pdfs[2].Filename)
}

func TestPDFAttachments_NoAttachments(t *testing.T) {
	extractor := newTestExtractor(&fakeMailbox{})

	pdfs := extractor.PDFAttachments(&interfaces.EmailMessage{ID: "m1"})

	assert.Empty(t, pdfs)
}

func TestPDFAttachments_UnresolvableIDSkipped(t *testing.T) {
	extractor := newTestExtractor(&fakeMailbox{})
	msg := &interfaces.EmailMessage{
		ID: "m1",
		Attachments: []interfaces.Attachment{
			{ID: "", Filename: "deck.pdf"},
			{ID: "a2", Filename: "other.pdf"},
		},
	}

	pdfs := extractor.PDFAttachments(msg)

	require.Len(t, pdfs, 1)
	assert.Equal(t, "other.pdf", pdfs[0].Filename)
}

func TestFetch_DelegatesToMailbox(t *testing.T) {
	mb := &fakeMailbox{downloads: map[string][]byte{"a1": []byte("pdf bytes")}}
	extractor := newTestExtractor(mb)

	data, err := extractor.Fetch(context.Background(), "m1", interfaces.Attachment{ID: "a1", Filename: "deck.pdf"})

	require.NoError(t, err)
	assert.Equal(t, []byte("pdf bytes"), data)
	assert.Equal(t, 1, mb.calls)
}

func TestFetch_DownloadFailure(t *testing.T) {
	extractor := newTestExtractor(&fakeMailbox{})

	_, err := extractor.Fetch(context.Background(), "m1", interfaces.Attachment{ID: "missing"})

	assert.ErrorIs(t, err, ErrAttachment)
}
