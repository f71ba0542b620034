package mapper

import (
	"careconnect-api/modules/address/dto"
	"careconnect-api/modules/address/entity"
)

func ToAddressResponse(address *entity.Address) *dto.AddressResponse {
	resp := &dto.AddressResponse{
		ID:         address.ID.String(),
		Label:      address.Label,
		Line1:      address.Line1,
		City:       address.City,
		Province:   address.Province,
		PostalCode: address.PostalCode,
		IsDefault:  address.IsDefault,
		CreatedAt:  address.CreatedAt,
	}
	if address.Line2 != nil {
		resp.Line2 = *address.Line2
	}
	return resp
}

func ToAddressListResponse(addresses []entity.Address) []dto.AddressResponse {
	out := make([]dto.AddressResponse, 0, len(addresses))
	for i := range addresses {
		out = append(out, *ToAddressResponse(&addresses[i]))
	}
	return out
}
