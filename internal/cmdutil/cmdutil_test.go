package cmdutil

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nebbyJammin/jpg2ascii/pkg/asciiart"
)

func writePNG(t *testing.T, path string, c color.NRGBA) {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := range 2 {
		for x := range 2 {
			img.SetNRGBA(x, y, c)
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func TestIsImage(t *testing.T) {
	assert.True(t, IsImage("a.JPG"))
	assert.True(t, IsImage("dir/b.jpeg"))
	assert.True(t, IsImage("c.png"))
	assert.True(t, IsImage("d.gif"))
	assert.False(t, IsImage("e.webp"))
	assert.False(t, IsImage("README"))
}

func TestFindImage(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "b.png"), 0o755))

	_, err := FindImage(dir)
	assert.ErrorIs(t, err, ErrNoImage)

	writePNG(t, filepath.Join(dir, "z.png"), color.NRGBA{A: 255})
	writePNG(t, filepath.Join(dir, "c.gif"), color.NRGBA{A: 255})

	path, err := FindImage(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "c.gif"), path)

	_, err = FindImage(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConvertImages(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "black.png"), color.NRGBA{A: 255})
	writePNG(t, filepath.Join(dir, "white.png"), color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.jpg"), []byte("nope"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip me"), 0o644))

	a := asciiart.New(asciiart.WithScale(1), asciiart.WithAspect(1))

	var out bytes.Buffer
	timings, err := ConvertImages(&out, a, dir)
	require.NoError(t, err)
	require.Len(t, timings, 2)
	assert.Equal(t, filepath.Join(dir, "black.png"), timings[0].Path)
	assert.Equal(t, filepath.Join(dir, "white.png"), timings[1].Path)

	s := out.String()
	assert.Contains(t, s, "Image: black.png\n  \n  \n\n")
	assert.Contains(t, s, "Image: white.png\n@@\n@@\n\n")
	assert.Contains(t, s, "Error converting to ascii")
	assert.NotContains(t, s, "notes.txt")
}
