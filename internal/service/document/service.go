// Package document ingests uploaded PDFs and turns them into the flat text
// blob the matcher falls back to. Extraction failures are recovered locally:
// the session simply keeps no document text.
package document

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/gen2brain/go-fitz"

	chatservice "github.com/tatvaai/careerbot/backend/internal/service/chat"
)

var ErrEmptyUpload = errors.New("uploaded document is empty")

// Service extracts text from uploaded documents and stores it on the session.
type Service struct {
	chatSvc  *chatservice.Service
	maxBytes int64
}

// NewService builds the ingestion service. maxBytes caps the accepted upload
// size; a non-positive value disables the cap.
func NewService(chatSvc *chatservice.Service, maxBytes int64) *Service {
	return &Service{chatSvc: chatSvc, maxBytes: maxBytes}
}

// Result reports what ingestion did for the caller's notice to the user.
type Result struct {
	Pages     int    `json:"pages"`
	Extracted bool   `json:"extracted"`
	Notice    string `json:"notice"`
}

// Ingest reads the uploaded PDF, extracts its text in page order and replaces
// the session's document text. When extraction fails the session's document
// text is cleared and the failure is reported in the Result, not as an error:
// the bot keeps working without the fallback.
func (s *Service) Ingest(ctx context.Context, sessionID string, upload io.Reader) (Result, error) {
	if _, err := s.chatSvc.GetSession(ctx, sessionID); err != nil {
		return Result{}, err
	}

	reader := upload
	if s.maxBytes > 0 {
		reader = io.LimitReader(upload, s.maxBytes)
	}
	raw, err := io.ReadAll(reader)
	if err != nil {
		return Result{}, fmt.Errorf("read upload: %w", err)
	}
	if len(raw) == 0 {
		return Result{}, ErrEmptyUpload
	}

	text, pages, err := extractText(raw)
	if err != nil {
		log.Printf("[document] extraction failed for session=%s: %v", sessionID, err)
		if clearErr := s.chatSvc.SetDocumentText(ctx, sessionID, ""); clearErr != nil {
			return Result{}, clearErr
		}
		return Result{
			Extracted: false,
			Notice:    "Could not extract text from the document. The bot will answer from the FAQ only.",
		}, nil
	}

	if err := s.chatSvc.SetDocumentText(ctx, sessionID, text); err != nil {
		return Result{}, err
	}
	return Result{
		Pages:     pages,
		Extracted: true,
		Notice:    "Document uploaded and text extracted successfully.",
	}, nil
}

// extractText pulls the text of every page in order and joins the pages with
// newlines.
func extractText(raw []byte) (string, int, error) {
	doc, err := fitz.NewFromMemory(raw)
	if err != nil {
		return "", 0, fmt.Errorf("open pdf: %w", err)
	}
	defer doc.Close()

	pageCount := doc.NumPage()
	pages := make([]string, 0, pageCount)
	for i := 0; i < pageCount; i++ {
		pageText, err := doc.Text(i)
		if err != nil {
			return "", 0, fmt.Errorf("extract page %d: %w", i+1, err)
		}
		pages = append(pages, pageText)
	}

	return strings.Join(pages, "\n"), pageCount, nil
}
