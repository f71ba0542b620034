package dto

import "time"

type SubmitDocumentRequest struct {
	DocumentType    string `json:"document_type" validate:"required"`
	ReferenceNumber string `json:"reference_number" validate:"required"`
}

type ReviewDocumentRequest struct {
	Approve bool   `json:"approve"`
	Note    string `json:"note"`
}

type DocumentResponse struct {
	ID              string     `json:"id"`
	DocumentType    string     `json:"document_type"`
	ReferenceNumber string     `json:"reference_number"`
	Status          string     `json:"status"`
	SubmittedAt     time.Time  `json:"submitted_at"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
	ReviewNote      string     `json:"review_note,omitempty"`
}
