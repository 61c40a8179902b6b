package qrcode

import (
	"bytes"
	"encoding/json"
	"image/png"
	"testing"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		in   string
		want qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"m", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.in))
		})
	}
}

func TestQRCodeService_GeneratePostQR_IsPNG(t *testing.T) {
	svc := NewQRCodeService(256, "M", "https://lostfound.example")

	qrBytes, err := svc.GeneratePostQR("665f1c2e9b1d4a0012345678", "/posts/665f1c2e9b1d4a0012345678")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestQRCodeService_GeneratePostQR_ClampsSize(t *testing.T) {
	svc := NewQRCodeService(5000, "L", "")

	qrBytes, err := svc.GeneratePostQR("p1", "/posts/p1")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, maxSize, img.Bounds().Dx())
}

func TestQRCodeService_GeneratePostQR_RequiresID(t *testing.T) {
	svc := NewQRCodeService(256, "M", "")

	_, err := svc.GeneratePostQR("", "/posts/")
	assert.Error(t, err)
}

func TestQRCodeService_Content(t *testing.T) {
	withBase := NewQRCodeService(256, "M", "https://lostfound.example/").(*qrcodeService)
	noBase := NewQRCodeService(256, "M", "").(*qrcodeService)

	got, err := withBase.content("p1", "/posts/p1")
	require.NoError(t, err)
	assert.Equal(t, "https://lostfound.example/posts/p1", got)

	got, err = noBase.content("p1", "https://elsewhere.example/posts/p1")
	require.NoError(t, err)
	assert.Equal(t, "https://elsewhere.example/posts/p1", got)

	got, err = noBase.content("p1", "/posts/p1")
	require.NoError(t, err)

	var data PostCodeData
	require.NoError(t, json.Unmarshal([]byte(got), &data))
	assert.Equal(t, PostCodeData{PostID: "p1", Link: "/posts/p1", Type: "post"}, data)
}
