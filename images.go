package gart

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// DecodedImage is one image read by DecodeImages
type DecodedImage struct {
	Name  string
	Kind  string
	Image image.Image
}

// DecodeImages decodes a list of image files in parallel. Files that cannot
// be read or decoded are skipped and reported in the returned errors, so the
// number of images may be smaller than the number of files.
func DecodeImages(imageFiles []string) ([]DecodedImage, []error) {
	type result struct {
		img DecodedImage
		err error
	}

	results := make([]chan result, len(imageFiles))
	for i, fName := range imageFiles {
		results[i] = make(chan result, 1)
		go func(out chan<- result, fName string) {
			img, kind, err := decodeImage(fName)
			if err != nil {
				out <- result{err: err}
				return
			}
			out <- result{img: DecodedImage{Name: Basename(fName), Kind: kind, Image: img}}
		}(results[i], fName)
	}

	// Collect in the order the files were given.
	var (
		imgs []DecodedImage
		errs []error
	)
	for _, ch := range results {
		r := <-ch
		if r.err != nil {
			errs = append(errs, r.err)
			continue
		}
		imgs = append(imgs, r.img)
	}
	return imgs, errs
}

func decodeImage(fName string) (image.Image, string, error) {
	file, err := os.Open(fName)
	if err != nil {
		return nil, "", err
	}
	defer file.Close()
	img, kind, err := image.Decode(file)
	if err != nil {
		return nil, "", fmt.Errorf("could not decode %q into a supported image format: %w", fName, err)
	}
	return img, kind, nil
}

// VpCenter inspects the canvas and image geometry, and determines where the
// origin of the image should be painted into the canvas.
// If the image is bigger than the canvas, this is always (0, 0).
// If the image is the same size, then it is also (0, 0).
// If a dimension of the image is smaller than the canvas, then:
// x = (canvas_width - image_width) / 2 and
// y = (canvas_height - image_height) / 2
func VpCenter(ximg image.Image, canWidth, canHeight int) image.Point {
	xmargin, ymargin := 0, 0
	if ximg.Bounds().Dx() < canWidth {
		xmargin = (canWidth - ximg.Bounds().Dx()) / 2
	}
	if ximg.Bounds().Dy() < canHeight {
		ymargin = (canHeight - ximg.Bounds().Dy()) / 2
	}
	return image.Point{xmargin, ymargin}
}
