package export

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/bookmakerhq/bookmaker/templates"
)

// Paper dimensions in inches, the unit Chrome's print API expects.
const (
	paperA4Width      = 8.27
	paperA4Height     = 11.69
	paperLetterWidth  = 8.5
	paperLetterHeight = 11.0

	// Fixed print margin on all four sides (20mm).
	printMarginInches = 0.79

	jpegQuality = 90
)

// Renderer rasterizes an assembled document through a headless browser.
// Every invocation launches its own browser instance, exclusively owned by
// the in-flight request, and tears it down on every exit path.
type Renderer struct{}

func NewRenderer() *Renderer {
	log.Println("INFO (Renderer): Using headless Chrome (rod) for PDF/JPEG rendering")
	return &Renderer{}
}

// RenderPDF rasterizes the full document to PDF. The paper size derives
// from the template's page setup; templates without one print on Letter.
// Backgrounds are included.
func (rd *Renderer) RenderPDF(ctx context.Context, htmlDoc string, setup *templates.PageSetup) ([]byte, error) {
	width, height := paperSize(setup)

	return rd.withPage(ctx, htmlDoc, func(page *rod.Page) ([]byte, error) {
		stream, err := page.PDF(&proto.PagePrintToPDF{
			PrintBackground: true,
			PaperWidth:      f64(width),
			PaperHeight:     f64(height),
			MarginTop:       f64(printMarginInches),
			MarginBottom:    f64(printMarginInches),
			MarginLeft:      f64(printMarginInches),
			MarginRight:     f64(printMarginInches),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to print page to PDF: %w", err)
		}
		data, err := io.ReadAll(stream)
		if err != nil {
			return nil, fmt.Errorf("failed to read PDF stream: %w", err)
		}
		return data, nil
	})
}

// RenderJPEG captures only the first viewport of the document as a JPEG.
func (rd *Renderer) RenderJPEG(ctx context.Context, htmlDoc string) ([]byte, error) {
	return rd.withPage(ctx, htmlDoc, func(page *rod.Page) ([]byte, error) {
		quality := jpegQuality
		data, err := page.Screenshot(false, &proto.PageCaptureScreenshot{
			Format:  proto.PageCaptureScreenshotFormatJpeg,
			Quality: &quality,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to capture screenshot: %w", err)
		}
		return data, nil
	})
}

// withPage launches a browser, loads htmlDoc into a fresh page, runs fn,
// and guarantees the browser process is closed whether fn succeeds or not.
func (rd *Renderer) withPage(ctx context.Context, htmlDoc string, fn func(*rod.Page) ([]byte, error)) ([]byte, error) {
	chromeLauncher := launcher.New().Headless(true)
	controlURL, err := chromeLauncher.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch headless browser: %w", err)
	}
	defer chromeLauncher.Cleanup()

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to headless browser: %w", err)
	}
	defer func() {
		if closeErr := browser.Close(); closeErr != nil {
			log.Printf("WARN (Renderer): Failed to close browser: %v", closeErr)
		}
	}()

	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, fmt.Errorf("failed to open browser page: %w", err)
	}
	if err := page.SetDocumentContent(htmlDoc); err != nil {
		return nil, fmt.Errorf("failed to set page content: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("failed waiting for page load: %w", err)
	}

	return fn(page)
}

// paperSize maps a template's page setup to print dimensions in inches.
// Templates without a setup, or with an unrecognized size name, print on
// Letter rather than failing.
func paperSize(setup *templates.PageSetup) (width, height float64) {
	if setup != nil && setup.Size == "A4" {
		return paperA4Width, paperA4Height
	}
	return paperLetterWidth, paperLetterHeight
}

func f64(v float64) *float64 {
	return &v
}
