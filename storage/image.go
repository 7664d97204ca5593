package storage

import (
	"bytes"
	"image"
	"image/jpeg"
	_ "image/png"

	"github.com/nfnt/resize"
)

// Uploads wider than this are downscaled before storing. The original site
// compressed images in the browser; here it happens on the way in.
const maxImageWidth = 1600

func shrinkImage(data []byte) []byte {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		// not a decodable image, store as-is
		return data
	}
	if img.Bounds().Dx() <= maxImageWidth {
		return data
	}

	small := resize.Resize(maxImageWidth, 0, img, resize.Lanczos3)
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, small, &jpeg.Options{Quality: 85}); err != nil {
		return data
	}
	return buf.Bytes()
}
