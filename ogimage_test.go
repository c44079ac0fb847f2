package folio

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCard(t *testing.T) {
	data, err := RenderCard(testPost("1", "hello-world", "Hello World"), "Test Site")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, cardWidth, img.Bounds().Dx())
	assert.Equal(t, cardHeight, img.Bounds().Dy())

	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(colorBackground.R), r>>8)
	assert.Equal(t, uint32(colorBackground.G), g>>8)
	assert.Equal(t, uint32(colorBackground.B), b>>8)
}

func TestWrapTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		width int
		rows  int
		want  []string
	}{
		{"fits", "Hello World", 20, 4, []string{"Hello World"}},
		{"wraps", "Automating Docker ECR deployment", 12, 4, []string{"Automating", "Docker ECR", "deployment"}},
		{"truncates", "one two three four five", 9, 2, []string{"one two", "three..."}},
		{"long word", "Supercalifragilistic", 10, 2, []string{"Superca..."}},
		{"empty", "", 10, 2, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapTitle(tt.title, tt.width, tt.rows)
			assert.Equal(t, tt.want, got)
			for _, line := range got {
				assert.LessOrEqual(t, len(line), tt.width, line)
			}
		})
	}
}

func TestWrapTitleKeepsEveryWord(t *testing.T) {
	title := "Why I Caution Teams About Firebase for Serious Products"
	got := wrapTitle(title, 37, 4)
	assert.Equal(t, title, strings.Join(got, " "))
}
