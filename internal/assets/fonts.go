// internal/assets/fonts.go
package assets

import (
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// DefaultFontPath: шрифт с CJK-глифами для уведомлений; при отсутствии берётся basicfont.
const DefaultFontPath = "assets/fonts/NotoSansTC-Regular.ttf"

// LoadFace читает TTF/OTF-файл и создаёт начертание размера size.
func LoadFace(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load font %s: %w", path, err)
	}
	tt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font face %s: %w", path, err)
	}
	return face, nil
}

// FaceOrDefault загружает шрифт или возвращает встроенный basicfont.
func FaceOrDefault(path string, size float64, logger *slog.Logger) font.Face {
	face, err := LoadFace(path, size)
	if err != nil {
		if logger != nil {
			logger.Warn("using fallback font", "path", path, "err", err)
		}
		return basicfont.Face7x13
	}
	return face
}
