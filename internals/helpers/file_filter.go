package helper

import "strings"

var imageOrPdfAllowedTypes = []string{
	"image/png", "image/jpg", "image/jpeg", "image/jfif", "image/webp",
	"application/pdf",
}

var documentAllowedTypes = append(imageOrPdfAllowedTypes,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"text/csv",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"application/x-zip-compressed",
	"text/plain",
	"application/vnd.ms-excel",
	"application/vnd.openxmlformats-officedocument.presentationml.presentation",
)

// ImageOrPdfFilter reports whether the mime type is an accepted image or PDF.
func ImageOrPdfFilter(filetype string) bool {
	return containsFold(imageOrPdfAllowedTypes, filetype)
}

// DocumentFilter reports whether the mime type is an accepted document.
func DocumentFilter(filetype string) bool {
	return containsFold(documentAllowedTypes, filetype)
}

func containsFold(allowed []string, filetype string) bool {
	for _, t := range allowed {
		if strings.EqualFold(t, filetype) {
			return true
		}
	}
	return false
}
