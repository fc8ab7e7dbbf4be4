package generator

// fallbackPNG is a 1x1 white pixel. It is the last tier: returned only when
// both the live and stock image fetches fail, so Generate can always hand
// back a valid image.
var fallbackPNG = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0c, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0xf8, 0x0f, 0x04, 0x00,
	0x09, 0xfb, 0x03, 0xfd, 0x86, 0x57, 0xc6, 0x7a, 0x00, 0x00, 0x00, 0x00,
	0x49, 0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

// FallbackImage returns a copy so callers cannot corrupt the embedded bytes.
func FallbackImage() []byte {
	img := make([]byte, len(fallbackPNG))
	copy(img, fallbackPNG)
	return img
}
