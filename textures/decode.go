package textures

import (
	"fmt"
	"image"
	"os"
	"runtime"

	// Codecs for the image formats scene textures ship in.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "github.com/ftrvxmtrx/tga"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/mandykoh/prism"
)

// decodeImage reads and decodes the image at path, rejects channel layouts
// the scene shader can't sample (anything but RGB/RGBA), normalizes to NRGBA
// and flips it vertically so the first pixel row is the bottom of the image,
// matching GL texture coordinates.
func decodeImage(path string) (img *image.NRGBA, hasAlpha bool, err error) {

	f, err := os.Open(path)
	if err != nil {
		return nil, false, err
	}
	defer f.Close()

	decoded, _, err := image.Decode(f)
	if err != nil {
		return nil, false, err
	}

	channels := channelCount(decoded)
	if channels != 3 && channels != 4 {
		return nil, false, fmt.Errorf("image has %d channels, only 3 (RGB) and 4 (RGBA) are handled", channels)
	}

	img = prism.ConvertImageToNRGBA(decoded, runtime.NumCPU())
	flipVertical(img)

	return img, channels == 4, nil
}

// channelCount reports how many color channels the decoded representation
// carries. Paletted images count as 4 since palette entries are RGBA.
func channelCount(img image.Image) int {

	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.Alpha, *image.Alpha16:
		return 1
	case *image.YCbCr:
		return 3
	default:
		return 4
	}
}

func flipVertical(img *image.NRGBA) {

	h := img.Rect.Dy()
	rowLen := img.Rect.Dx() * 4

	tmp := make([]byte, rowLen)
	for y := 0; y < h/2; y++ {

		top := img.Pix[y*img.Stride : y*img.Stride+rowLen]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-1-y)*img.Stride+rowLen]

		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}
