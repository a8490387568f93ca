package dto

import "mime"

var patchMediaTypes = map[string]bool{
	"application/json":             true,
	"application/merge-patch+json": true,
}

func IsPatchMediaType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return patchMediaTypes[mediaType]
}
