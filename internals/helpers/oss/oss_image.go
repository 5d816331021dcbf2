// file: internals/helpers/oss/oss_image.go
package helper

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"
	"strconv"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

func envInt(key string, def int) int {
	if v := getEnv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func envFloat(key string, def float32) float32 {
	if v := getEnv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil && f >= 0 {
			return float32(f)
		}
	}
	return def
}

/* =======================================================================
   Konfigurasi WebP (ENV-Driven)
======================================================================= */

type WebPOptions struct {
	MaxW    int     // batas lebar (resize keep-aspect)
	MaxH    int     // batas tinggi
	Quality float32 // kualitas lossy
	ThumbW  int     // lebar thumbnail
	ThumbH  int     // tinggi thumbnail
}

func DefaultWebPOptionsFromEnv() WebPOptions {
	return WebPOptions{
		MaxW:    envInt("IMAGE_WEBP_MAX_W", 1600),
		MaxH:    envInt("IMAGE_WEBP_MAX_H", 1600),
		Quality: envFloat("IMAGE_WEBP_QUALITY", 80),
		ThumbW:  envInt("IMAGE_THUMB_W", 320),
		ThumbH:  envInt("IMAGE_THUMB_H", 320),
	}
}

/* =======================================================================
   Decode gambar (jpeg/png/webp) dari []byte dengan sniff MIME
======================================================================= */

func decodeImage(all []byte) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	var (
		img image.Image
		err error
	)
	switch {
	case strings.Contains(ct, "jpeg"):
		img, err = jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		img, err = png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		img, err = webp.Decode(bytes.NewReader(all))
	default:
		return nil, fmt.Errorf("format gambar tidak didukung: %s", ct)
	}
	if err != nil {
		return nil, fmt.Errorf("decode gambar: %w", err)
	}
	return img, nil
}

// ToWebP men-decode gambar apa pun yang didukung lalu re-encode ke WebP lossy,
// resize keep-aspect kalau melebihi MaxW/MaxH.
func ToWebP(all []byte, opt WebPOptions) ([]byte, error) {
	img, err := decodeImage(all)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if (opt.MaxW > 0 && w > opt.MaxW) || (opt.MaxH > 0 && h > opt.MaxH) {
		scale := 1.0
		if opt.MaxW > 0 && w > opt.MaxW {
			scale = float64(opt.MaxW) / float64(w)
		}
		if opt.MaxH > 0 && float64(h)*scale > float64(opt.MaxH) {
			scale = float64(opt.MaxH) / float64(h)
		}
		nw := int(float64(w) * scale)
		nh := int(float64(h) * scale)
		dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Lossless: false, Quality: opt.Quality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

// Thumbnail membuat varian kecil (fit dalam ThumbW x ThumbH) sebagai WebP.
func Thumbnail(all []byte, opt WebPOptions) ([]byte, error) {
	img, err := decodeImage(all)
	if err != nil {
		return nil, err
	}
	small := imaging.Fit(img, opt.ThumbW, opt.ThumbH, imaging.Lanczos)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, small, &webp.Options{Lossless: false, Quality: opt.Quality}); err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}
