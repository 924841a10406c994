package utils

import (
	"os"
	"time"

	"github.com/kataras/iris/v12/middleware/jwt"
)

// AccessToken is the claims payload carried by every authenticated request.
// HotelID is nil for platform admins.
type AccessToken struct {
	ID      uint   `json:"ID"`
	Role    string `json:"role"`
	HotelID *uint  `json:"hotelID"`
}

// CreateAccessToken signs a 24h access token for the given user. There is
// no login flow in this service; tokens are issued by the auth collaborator
// and by the seed script for local development.
func CreateAccessToken(id uint, role string, hotelID *uint) (string, error) {
	signer := jwt.NewSigner(jwt.HS256, os.Getenv("ACCESS_TOKEN_SECRET"), 24*time.Hour)

	claims := AccessToken{
		ID:      id,
		Role:    role,
		HotelID: hotelID,
	}

	token, err := signer.Sign(claims)
	if err != nil {
		return "", err
	}

	return string(token), nil
}
