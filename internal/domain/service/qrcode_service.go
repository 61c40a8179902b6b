package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GeneratePostQR renders a PNG QR code that opens the post link
	GeneratePostQR(postID, link string) ([]byte, error)
}
