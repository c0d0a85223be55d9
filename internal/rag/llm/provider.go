package llm

import "context"

// Provider turns a question plus retrieved scripture passages (and the
// session's prior exchanges) into a grounded answer.
type Provider interface {
	Generate(ctx context.Context, query string, matches []string, messageHistory []string) (string, error)
}
