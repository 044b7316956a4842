package handler

import (
	"encoding/json"

	"github.com/xw1nchester/stylequiz-backend/internal/quiz"
	"github.com/xw1nchester/stylequiz-backend/pkg/types"
)

type StartResponse struct {
	QuizID string `json:"quiz_id"`
}

type AnswerRequest struct {
	QuizID  string               `json:"quiz_id" validate:"required,uuid"`
	Step    types.StringOrNumber `json:"step" validate:"required,min=1,max=64"`
	Payload json.RawMessage      `json:"payload" validate:"required"`
}

func (ar *AnswerRequest) ToDomain() quiz.Answer {
	return quiz.Answer{
		QuizID:  ar.QuizID,
		Step:    string(ar.Step),
		Payload: ar.Payload,
	}
}

type BrandSelectionRequest struct {
	QuizID           string   `json:"quiz_id" validate:"required,uuid"`
	FavoriteBrandIDs []string `json:"favorite_brand_ids" validate:"max=20"`
	CustomBrandNames []string `json:"custom_brand_names" validate:"max=20"`
	AutoPick         bool     `json:"auto_pick_brands"`
}

func (br *BrandSelectionRequest) ToDomain() quiz.BrandSelection {
	return quiz.BrandSelection{
		FavoriteBrandIDs: br.FavoriteBrandIDs,
		CustomBrandNames: br.CustomBrandNames,
		AutoPick:         br.AutoPick,
	}
}

type BrandSelectionResponse struct {
	Saved quiz.BrandSelection `json:"saved"`
}
