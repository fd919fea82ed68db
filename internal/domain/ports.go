package domain

import "context"

// Source wraps one external data source for one domain.
// Fetch returns zero or more raw records or an error; it must honour ctx.
type Source interface {
	Name() string
	Fetch(ctx context.Context, q TripQuery) ([]RawRecord, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc struct {
	Label string
	Fn    func(ctx context.Context, q TripQuery) ([]RawRecord, error)
}

func (s SourceFunc) Name() string { return s.Label }
func (s SourceFunc) Fetch(ctx context.Context, q TripQuery) ([]RawRecord, error) {
	return s.Fn(ctx, q)
}

type ResponseFormat string

const (
	FormatText       ResponseFormat = ""
	FormatJSONObject ResponseFormat = "json_object"
	FormatJSONArray  ResponseFormat = "json_array"
)

type GenerateRequest struct {
	System      string
	Prompt      string
	Format      ResponseFormat
	MaxTokens   int
	Temperature float64
}

// TextGenerator is the text-generation collaborator. Output is untrusted.
type TextGenerator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// PageFetcher returns the raw HTML body of a page.
type PageFetcher interface {
	FetchPage(ctx context.Context, url string) ([]byte, error)
}
