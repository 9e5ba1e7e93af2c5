package services

import (
	"context"
	"fmt"

	config "github.com/jngeno/stablemate/configs"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Keeps prompts inside the model's context window for large uploads.
const maxDocumentChars = 48000

// AnswerDocumentQuestion forwards a natural-language question plus a
// document's extracted text to the hosted language model and returns its
// free-text answer.
func AnswerDocumentQuestion(ctx context.Context, question, documentText string) (string, error) {
	apiKey := config.Config("OPENAI_API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("document search API key not configured")
	}

	if len(documentText) > maxDocumentChars {
		documentText = documentText[:maxDocumentChars]
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))
	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModelGPT4oMini,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage("You answer questions about a horse owner's uploaded document. Use only the document text provided; say so if the answer is not in the document."),
			openai.UserMessage(fmt.Sprintf("Document text:\n%s\n\nQuestion: %s", documentText, question)),
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("language model returned no answer")
	}

	return resp.Choices[0].Message.Content, nil
}
