package response

import "space-booking-api/internal/usecase/readmodel"

type LoginResponse struct {
	AccessToken string                      `json:"access_token"`
	User        *readmodel.AuthorizedUserRM `json:"user"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}
