package mapper

import (
	"careconnect-api/modules/verification/dto"
	"careconnect-api/modules/verification/entity"
)

func ToDocumentResponse(doc *entity.VerificationDocument) *dto.DocumentResponse {
	resp := &dto.DocumentResponse{
		ID:              doc.ID.String(),
		DocumentType:    doc.DocumentType,
		ReferenceNumber: doc.ReferenceNumber,
		Status:          doc.Status,
		SubmittedAt:     doc.SubmittedAt,
		ReviewedAt:      doc.ReviewedAt,
	}
	if doc.ReviewNote != nil {
		resp.ReviewNote = *doc.ReviewNote
	}
	return resp
}

func ToDocumentListResponse(docs []entity.VerificationDocument) []dto.DocumentResponse {
	out := make([]dto.DocumentResponse, 0, len(docs))
	for i := range docs {
		out = append(out, *ToDocumentResponse(&docs[i]))
	}
	return out
}
