package service

import "github.com/google/uuid"

// QRCodeService generates shareable QR codes for public profile pages.
type QRCodeService interface {
	// GenerateProfileQR returns a PNG QR code encoding the public URL of
	// the given user's profile page.
	GenerateProfileQR(userID uuid.UUID) ([]byte, error)
}
