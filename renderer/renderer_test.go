package renderer

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ByLCY/quire/layout"
)

// recordingSurface 记录所有调用，便于断言调用顺序。
type recordingSurface struct {
	calls   []string
	saved   string
	saveErr error
}

func (r *recordingSurface) NewPage() { r.calls = append(r.calls, "page") }

func (r *recordingSurface) SetFont(size float64, bold bool) {
	r.calls = append(r.calls, fmt.Sprintf("font %g %t", size, bold))
}

func (r *recordingSurface) DrawText(x, y float64, text string) {
	r.calls = append(r.calls, fmt.Sprintf("text %g %g %s", x, y, text))
}

func (r *recordingSurface) Save(path string) error {
	r.saved = path
	return r.saveErr
}

func sampleDocument() *layout.Document {
	return &layout.Document{
		Title: "My CV",
		Pages: []layout.Page{
			{Index: 0, Commands: []layout.DrawCommand{
				{Page: 0, X: 20, Y: 20, Text: "My CV", FontSize: 18, Bold: true},
				{Page: 0, X: 20, Y: 32, Text: "a", FontSize: 11},
				{Page: 0, X: 20, Y: 37, Text: "b", FontSize: 11},
			}},
			{Index: 1, Commands: []layout.DrawCommand{
				{Page: 1, X: 20, Y: 20, Text: "c", FontSize: 11},
				{Page: 1, X: 20, Y: 25, Text: "Next", FontSize: 15, Bold: true},
			}},
		},
	}
}

func TestDrawSetsFontOnlyOnChange(t *testing.T) {
	s := &recordingSurface{}
	Draw(sampleDocument(), s)

	assert.Equal(t, []string{
		"font 18 true",
		"text 20 20 My CV",
		"font 11 false",
		"text 20 32 a",
		"text 20 37 b",
		"page",
		"text 20 20 c",
		"font 15 true",
		"text 20 25 Next",
	}, s.calls)
}

func TestEmitSavesUnderTitleName(t *testing.T) {
	s := &recordingSurface{}
	path, err := Emit(sampleDocument(), s, "out")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("out", "my_cv.pdf"), path)
	assert.Equal(t, path, s.saved)
}

func TestEmitPropagatesSaveError(t *testing.T) {
	boom := errors.New("disk full")
	s := &recordingSurface{saveErr: boom}
	_, err := Emit(sampleDocument(), s, "")
	require.Error(t, err)
	assert.Equal(t, boom, errors.Cause(err))
	assert.ErrorIs(t, err, boom)
}

func TestEmitRejectsNil(t *testing.T) {
	_, err := Emit(nil, &recordingSurface{}, "")
	assert.Error(t, err)
	_, err = Emit(sampleDocument(), nil, "")
	assert.Error(t, err)
}

func TestFileName(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Currículo", "currículo.pdf"},
		{"Cover Letter  Acme\tInc", "cover_letter_acme_inc.pdf"},
		{"  Trimmed Title ", "trimmed_title.pdf"},
		{"ÉCOLE", "école.pdf"},
		{"a/b", "a_b.pdf"},
		{"", "document.pdf"},
		{"   ", "document.pdf"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FileName(tt.title), "title %q", tt.title)
	}
}
