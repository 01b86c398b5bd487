// internal/services/storage_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyFromPublicURL(t *testing.T) {
	buckets := []string{"property-images", "property-documents"}

	tests := []struct {
		name       string
		url        string
		wantBucket string
		wantKey    string
	}{
		{
			name:       "virtual hosted s3 url",
			url:        "https://property-images.s3.ap-south-1.amazonaws.com/properties/20250601_abcd1234.jpg",
			wantBucket: "property-images",
			wantKey:    "properties/20250601_abcd1234.jpg",
		},
		{
			name:       "cloudfront url",
			url:        "https://cdn.example.com/property-documents/documents/20250601_abcd1234.pdf",
			wantBucket: "property-documents",
			wantKey:    "documents/20250601_abcd1234.pdf",
		},
		{
			name:       "local dev url",
			url:        "http://localhost:8080/uploads/property-images/properties/20250601_abcd1234.png",
			wantBucket: "property-images",
			wantKey:    "properties/20250601_abcd1234.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket, key, err := KeyFromPublicURL(tt.url, buckets...)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantBucket, bucket)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}

func TestKeyFromPublicURLUnknownBucket(t *testing.T) {
	_, _, err := KeyFromPublicURL("https://elsewhere.example.com/other-bucket/file.jpg",
		"property-images", "property-documents")
	assert.Error(t, err)
}

func TestIsValidImageType(t *testing.T) {
	jpeg := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	gif := []byte("GIF89a......")
	webp := append([]byte("RIFF"), append([]byte{0, 0, 0, 0}, []byte("WEBP")...)...)
	pdf := []byte("%PDF-1.7")

	assert.True(t, isValidImageType(jpeg))
	assert.True(t, isValidImageType(png))
	assert.True(t, isValidImageType(gif))
	assert.True(t, isValidImageType(webp))
	assert.False(t, isValidImageType(pdf))
}
