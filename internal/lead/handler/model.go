package handler

import (
	"github.com/xw1nchester/stylequiz-backend/internal/lead"
)

type LeadRequest struct {
	Name   string `json:"name" validate:"required,min=2,max=100"`
	Phone  string `json:"phone" validate:"required,min=5,max=32"`
	Email  string `json:"email" validate:"omitempty,email"`
	QuizID string `json:"quiz_id" validate:"omitempty,uuid"`
}

func (lr *LeadRequest) ToDomain() lead.Lead {
	return lead.Lead{
		Name:   lr.Name,
		Phone:  lr.Phone,
		Email:  lr.Email,
		QuizID: lr.QuizID,
	}
}

type LeadResponse struct {
	Lead lead.Lead `json:"lead"`
}

type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}
