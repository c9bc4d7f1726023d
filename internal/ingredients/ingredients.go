// Package ingredients turns vision model output into an ordered ingredient
// list and prepares uploaded images for the model.
package ingredients

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/jpeg"
	_ "image/png"
	"strings"

	"github.com/nfnt/resize"

	"github.com/coolpotato/backend/internal/apperrors"
)

// Prompt is sent with every image. The model answers with a comma separated
// list and uses "unknown" for anything it cannot name.
const Prompt = "Identify all foods and ingredients you see in the image. " +
	"Also keep in mind the names will be sent to a recipe search API. " +
	"If you cannot identify certain items, write 'unknown' instead of giving inaccurate items. " +
	"Give every item separated by comma in your response"

// Unknown is the placeholder the model uses for unidentified items.
const Unknown = "unknown"

// Parse splits model output on commas. Tokens are trimmed and empty ones
// dropped; order, case and duplicates are preserved.
func Parse(text string) []string {
	out := make([]string, 0)
	for _, tok := range strings.Split(text, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// Join renders ingredients the way the recipe API expects them.
func Join(list []string) string {
	return strings.Join(list, ",")
}

// PrepareImage validates a base64 payload and returns it as JPEG. Images
// whose longest side exceeds maxDim are downscaled; maxDim 0 disables that.
// Other decodable formats are re-encoded so the payload always matches the
// image/jpeg type the vision clients declare. Payloads that are not decodable
// images are returned unchanged for the model to judge.
func PrepareImage(b64 string, maxDim uint) (string, error) {
	b64 = stripDataURL(b64)
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", apperrors.Validation("Image must be base64 encoded")
	}
	if len(raw) == 0 {
		return "", apperrors.Validation("Image is empty")
	}

	img, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return b64, nil
	}
	b := img.Bounds()
	oversized := maxDim > 0 && (uint(b.Dx()) > maxDim || uint(b.Dy()) > maxDim)
	if format == "jpeg" && !oversized {
		return b64, nil
	}

	if oversized {
		if b.Dx() >= b.Dy() {
			img = resize.Resize(maxDim, 0, img, resize.Lanczos3)
		} else {
			img = resize.Resize(0, maxDim, img, resize.Lanczos3)
		}
	}

	var out bytes.Buffer
	if err := jpeg.Encode(&out, img, &jpeg.Options{Quality: 85}); err != nil {
		return "", apperrors.Internal("failed to encode image", err)
	}
	return base64.StdEncoding.EncodeToString(out.Bytes()), nil
}

func stripDataURL(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "data:") {
		if i := strings.Index(s, ","); i >= 0 {
			return s[i+1:]
		}
	}
	return s
}
