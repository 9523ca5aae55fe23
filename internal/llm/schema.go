package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"google.golang.org/genai"

	"github.com/csheth/heartsync/internal/deck"
	"github.com/csheth/heartsync/internal/prompt"
)

// cardRecord mirrors one element of the JSON array the model returns.
type cardRecord struct {
	QuestionCN string `json:"question_cn" validate:"required"`
	QuestionEN string `json:"question_en" validate:"required"`
	Why        string `json:"why" validate:"required"`
	ProTip     string `json:"proTip" validate:"required"`
}

type cardBatch struct {
	Cards []cardRecord `validate:"required,min=1,max=10,dive"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// responseSchema asks the API for exactly the array shape parseCards accepts.
func responseSchema() *genai.Schema {
	str := func(desc string) *genai.Schema {
		return &genai.Schema{Type: genai.TypeString, Description: desc}
	}
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				prompt.FieldQuestionCN: str("The question in Chinese."),
				prompt.FieldQuestionEN: str("The same question in English, sentence case."),
				prompt.FieldWhy:        str("Why this question works for the scene."),
				prompt.FieldProTip:     str("How to ask it well."),
			},
			Required:         prompt.Fields,
			PropertyOrdering: prompt.Fields,
		},
	}
}

// parseCards decodes and validates the model text. Any problem with any
// record rejects the whole batch.
func parseCards(raw string) ([]deck.Card, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("%w: empty response text", ErrGeneration)
	}
	var records []cardRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("%w: decode cards: %v", ErrGeneration, err)
	}
	batch := cardBatch{Cards: records}
	if err := validate.Struct(batch); err != nil {
		return nil, fmt.Errorf("%w: invalid card payload: %v", ErrGeneration, err)
	}
	cards := make([]deck.Card, 0, len(records))
	for i, r := range records {
		card, err := deck.NewCard(r.QuestionCN, r.QuestionEN, r.Why, r.ProTip)
		if err != nil {
			return nil, fmt.Errorf("%w: card %d: %v", ErrGeneration, i, err)
		}
		cards = append(cards, card)
	}
	return cards, nil
}
