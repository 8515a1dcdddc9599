package export

import (
	"testing"

	"github.com/bookmakerhq/bookmaker/templates"
)

func TestPaperSize(t *testing.T) {
	cases := []struct {
		name       string
		setup      *templates.PageSetup
		wantWidth  float64
		wantHeight float64
	}{
		{"Nil setup falls back to Letter", nil, paperLetterWidth, paperLetterHeight},
		{"A4 setup", &templates.PageSetup{Size: "A4", Margin: "25mm"}, paperA4Width, paperA4Height},
		{"Unrecognized size falls back to Letter", &templates.PageSetup{Size: "B5"}, paperLetterWidth, paperLetterHeight},
		{"Empty size falls back to Letter", &templates.PageSetup{Margin: "20mm"}, paperLetterWidth, paperLetterHeight},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			width, height := paperSize(tc.setup)
			if width != tc.wantWidth || height != tc.wantHeight {
				t.Errorf("paperSize(%+v) = %gx%g, want %gx%g",
					tc.setup, width, height, tc.wantWidth, tc.wantHeight)
			}
		})
	}
}
