package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageOrPdfFilter(t *testing.T) {
	assert.True(t, ImageOrPdfFilter("image/png"))
	assert.True(t, ImageOrPdfFilter("application/pdf"))
	assert.True(t, ImageOrPdfFilter("IMAGE/JPEG"))

	assert.False(t, ImageOrPdfFilter("text/csv"))
	assert.False(t, ImageOrPdfFilter("application/x-msdownload"))
	assert.False(t, ImageOrPdfFilter(""))
}

func TestDocumentFilter(t *testing.T) {
	assert.True(t, DocumentFilter("application/pdf"))
	assert.True(t, DocumentFilter("text/csv"))
	assert.True(t, DocumentFilter("application/vnd.openxmlformats-officedocument.wordprocessingml.document"))

	assert.False(t, DocumentFilter("video/mp4"))
}
