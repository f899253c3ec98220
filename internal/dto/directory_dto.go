package dto

import "github.com/google/uuid"

type LawyerResponse struct {
	Id           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Firm         string    `json:"firm"`
	LegalArea    string    `json:"legal_area"`
	Jurisdiction string    `json:"jurisdiction"`
	Phone        string    `json:"phone,omitempty"`
	Email        string    `json:"email,omitempty"`
	URL          string    `json:"url,omitempty"`
	Rating       float64   `json:"rating"`
}

type ActionTemplateResponse struct {
	Topic        string   `json:"topic"`
	Jurisdiction string   `json:"jurisdiction"`
	Title        string   `json:"title"`
	Steps        []string `json:"steps"`
}

type CrisisResourceResponse struct {
	Name        string `json:"name"`
	Phone       string `json:"phone,omitempty"`
	URL         string `json:"url,omitempty"`
	Description string `json:"description,omitempty"`
}
