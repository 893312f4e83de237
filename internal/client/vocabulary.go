package client

import (
	"context"
	"net/http"

	"github.com/heartmarshall/wordflow-backend/internal/service/vocabulary"
	"github.com/heartmarshall/wordflow-backend/internal/transport/rest"
)

// SaveVocabulary saves a term together with its new flashcard.
func (c *Client) SaveVocabulary(ctx context.Context, input vocabulary.SaveInput) (*vocabulary.SaveResult, error) {
	req := rest.SaveVocabularyRequest{
		DocumentID:  input.DocumentID,
		Term:        input.Term,
		Translation: input.Translation,
		Context:     input.Context,
		Page:        input.Page,
	}

	var resp rest.SaveVocabularyResponse
	if err := c.call(ctx, http.MethodPost, "/api/vocabulary", nil, req, &resp); err != nil {
		return nil, err
	}

	item := rest.FromVocabularyItem(resp.Item)
	card := rest.FromFlashcard(resp.Flashcard)
	return &vocabulary.SaveResult{Item: &item, Card: &card}, nil
}
