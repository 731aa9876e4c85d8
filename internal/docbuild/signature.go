package docbuild

import (
	"encoding/base64"
	"strings"
)

type signatureImage struct {
	ext  string
	data []byte
}

// mediaExt maps the data-URL media type to the archive file extension.
var mediaExt = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpeg",
	"image/jpg":  "jpg",
	"image/gif":  "gif",
	"image/bmp":  "bmp",
}

// decodeSignature extracts the image bytes from a signature data URL. It is
// best effort: an empty, malformed or unsupported URL yields nil, and the
// caller renders the handwritten-signature fallback instead.
func decodeSignature(dataURL string) *signatureImage {
	if dataURL == "" {
		return nil
	}
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return nil
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil
	}
	mediaType, _, _ := strings.Cut(meta, ";")
	if !strings.Contains(meta, "base64") {
		return nil
	}
	ext, ok := mediaExt[strings.ToLower(strings.TrimSpace(mediaType))]
	if !ok {
		return nil
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil || len(data) == 0 {
		return nil
	}
	return &signatureImage{ext: ext, data: data}
}
