// Package gemini answers questions about store content using Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"docref"

	"google.golang.org/genai"
)

// Ensure Asker implements docref.Asker at compile time.
var _ docref.Asker = (*Asker)(nil)

// Asker implements docref.Asker using Google Gemini.
type Asker struct {
	client *genai.Client
	docs   docref.DocumentService
	model  string

	// Tokens caps the documentation context stuffed into the prompt.
	// Nil disables the cap.
	Tokens docref.TokenCounter

	// MaxContextTokens is the token budget for stuffed documents.
	MaxContextTokens int
}

// NewAsker creates a new Asker.
func NewAsker(client *genai.Client, docs docref.DocumentService, model string) *Asker {
	return &Asker{
		client:           client,
		docs:             docs,
		model:            model,
		MaxContextTokens: 500_000,
	}
}

// Ask answers a natural language question about the stored documentation.
func (a *Asker) Ask(ctx context.Context, question string) (string, error) {
	if question == "" {
		return "", docref.Errorf(docref.EINVALID, "question required")
	}

	docs, err := a.docs.FindDocuments(ctx, docref.DocumentFilter{SortBy: docref.SortByPosition})
	if err != nil {
		return "", err
	}
	if len(docs) == 0 {
		return "", docref.Errorf(docref.ENOTFOUND, "the store has no documents; run 'docref import' first")
	}

	if a.Tokens != nil {
		docs, err = a.capContext(ctx, docs)
		if err != nil {
			return "", err
		}
	}

	prompt := BuildUserPrompt(docs, question)
	config := BuildConfig()

	result, err := a.client.Models.GenerateContent(ctx, a.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", docref.Errorf(docref.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// capContext truncates the document list so the stuffed context stays
// within the token budget. Documents are dropped from the end, keeping
// store order.
func (a *Asker) capContext(ctx context.Context, docs []*docref.Document) ([]*docref.Document, error) {
	total := 0
	for i, doc := range docs {
		n, err := a.Tokens.CountTokens(ctx, doc.Content)
		if err != nil {
			return nil, err
		}
		total += n
		if total > a.MaxContextTokens {
			if i == 0 {
				return nil, docref.Errorf(docref.EINVALID,
					"document %q alone exceeds the context budget", doc.Path)
			}
			return docs[:i], nil
		}
	}
	return docs, nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a helpful assistant answering questions about reference documentation. Answer based only on the documentation provided. If the answer is not in the documentation, say so.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing documentation and question.
func BuildUserPrompt(docs []*docref.Document, question string) string {
	var sb strings.Builder
	sb.WriteString("<documents>\n")
	for i, doc := range docs {
		title := doc.Title
		if title == "" {
			title = doc.Path
		}
		sb.WriteString("<document>\n")
		fmt.Fprintf(&sb, "<index>%d</index>\n", i+1)
		fmt.Fprintf(&sb, "<title>%s</title>\n", title)
		fmt.Fprintf(&sb, "<source>%s</source>\n", doc.Path)
		fmt.Fprintf(&sb, "<content>%s</content>\n", doc.Content)
		sb.WriteString("</document>\n")
	}
	sb.WriteString("</documents>\n\n")
	fmt.Fprintf(&sb, "Question: %s", question)
	return sb.String()
}
