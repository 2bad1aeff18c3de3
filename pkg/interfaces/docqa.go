package interfaces

import "context"

// DocumentQA uploads a document to a question-answering provider and
// answers natural-language questions against it. Ask never fails: a
// provider error or an explicit "not in the document" answer both come
// back as the literal string "None".
type DocumentQA interface {
	Upload(ctx context.Context, filename string, data []byte) (string, error)
	Ask(ctx context.Context, sourceID, question string) string
}
