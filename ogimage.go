package folio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Social card geometry, in pixels.
const (
	cardWidth   = 1200
	cardHeight  = 630
	cardMargin  = 80
	titleScale  = 4
	metaScale   = 2
	maxCardRows = 4
)

var (
	colorBackground = color.RGBA{0x0f, 0x0f, 0x23, 0xff}
	colorPaper      = color.RGBA{0x1a, 0x1a, 0x2e, 0xff}
	colorPrimary    = color.RGBA{0x63, 0x66, 0xf1, 0xff}
	colorSecondary  = color.RGBA{0xec, 0x48, 0x99, 0xff}
	colorText       = color.RGBA{0xe2, 0xe8, 0xf0, 0xff}
	colorMuted      = color.RGBA{0x94, 0xa3, 0xb8, 0xff}
)

// RenderCard draws a PNG social card for post: the title on the site's
// dark palette with the site name, date and read time underneath.
func RenderCard(post BlogPost, siteName string) ([]byte, error) {
	dst := image.NewRGBA(image.Rect(0, 0, cardWidth, cardHeight))
	fill(dst, dst.Bounds(), colorBackground)
	fill(dst, image.Rect(cardMargin/2, cardMargin/2, cardWidth-cardMargin/2, cardHeight-cardMargin/2), colorPaper)
	fill(dst, image.Rect(cardMargin/2, cardMargin/2, cardWidth-cardMargin/2, cardMargin/2+8), colorPrimary)
	fill(dst, image.Rect(cardMargin/2, cardHeight-cardMargin/2-8, cardWidth-cardMargin/2, cardHeight-cardMargin/2), colorSecondary)

	face := basicfont.Face7x13
	glyphW := face.Advance
	lineH := face.Height

	maxChars := (cardWidth - 2*cardMargin) / (glyphW * titleScale)
	y := cardMargin + 20
	for _, line := range wrapTitle(post.Title, maxChars, maxCardRows) {
		drawScaled(dst, line, cardMargin, y, titleScale, colorText)
		y += (lineH + 4) * titleScale
	}

	meta := strings.Join(nonEmpty(siteName, FormatDate(post.PublishedAt), ReadTimeLabel(post.ReadTime)), "  |  ")
	drawScaled(dst, meta, cardMargin, cardHeight-cardMargin-lineH*metaScale, metaScale, colorMuted)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encode card: %w", err)
	}
	return buf.Bytes(), nil
}

func fill(dst draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// drawScaled renders text with the 7x13 bitmap face onto a scratch image and
// scales it onto dst with nearest-neighbour sampling to keep pixels crisp.
func drawScaled(dst draw.Image, text string, x, y, scale int, c color.Color) {
	if text == "" {
		return
	}
	face := basicfont.Face7x13
	w := font.MeasureString(face, text).Ceil()
	src := image.NewRGBA(image.Rect(0, 0, w, face.Height))
	d := &font.Drawer{
		Dst:  src,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(text)

	target := image.Rect(x, y, x+w*scale, y+face.Height*scale)
	draw.NearestNeighbor.Scale(dst, target, src, src.Bounds(), draw.Over, nil)
}

// wrapTitle breaks title into at most rows lines of at most width
// characters, ending with "..." when the title does not fit.
func wrapTitle(title string, width, rows int) []string {
	var lines []string
	var cur strings.Builder
	words := strings.Fields(title)
	for i, w := range words {
		if len(w) > width {
			w = w[:width-3] + "..."
		}
		if cur.Len() > 0 && cur.Len()+1+len(w) > width {
			lines = append(lines, cur.String())
			cur.Reset()
			if len(lines) == rows {
				last := lines[rows-1]
				if len(last) > width-3 {
					last = last[:width-3]
				}
				lines[rows-1] = last + "..."
				return lines
			}
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(w)
		if i == len(words)-1 {
			lines = append(lines, cur.String())
		}
	}
	return lines
}

func nonEmpty(vals ...string) []string {
	out := vals[:0]
	for _, v := range vals {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func (a *App) handleCard(c echo.Context) error {
	img, err := a.Cache.Card(c.Param("slug"))
	if errors.Is(err, ErrNotFound) {
		return echo.ErrNotFound
	}
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "image/png", img)
}
