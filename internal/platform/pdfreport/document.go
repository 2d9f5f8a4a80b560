// Package pdfreport lays out single-table reports on top of fpdf.
//
// A Document is built top to bottom: an optional Header, any number of
// Sections and Tables, then Bytes to materialize the file. Text is
// translated to cp1252 so Spanish accents and dashes survive the core fonts.
package pdfreport

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-pdf/fpdf"
	"github.com/valyala/bytebufferpool"
)

type PageSize string

const (
	PageA4     PageSize = "A4"
	PageLetter PageSize = "Letter"
)

const (
	fontFamily = "Helvetica"
	lineFactor = 1.2
)

var subtleText = Hex("#666666")

// Options controls page geometry and output encoding.
type Options struct {
	Page         PageSize
	MarginLeft   float64
	MarginRight  float64
	MarginTop    float64
	MarginBottom float64
	Compress     bool
	Title        string
	Creator      string
	// CreatedAt pins the document timestamp; zero means now.
	CreatedAt time.Time
}

// DefaultOptions is portrait A4 with 36pt side and 42pt vertical margins.
func DefaultOptions() Options {
	return Options{
		Page:         PageA4,
		MarginLeft:   36,
		MarginRight:  36,
		MarginTop:    42,
		MarginBottom: 42,
		Compress:     true,
	}
}

// Header is the block at the top of the first page.
type Header struct {
	Title             string
	TitleSize         float64
	Attribution       string
	AttributionItalic bool
	Subtitle          string
}

type Document struct {
	pdf    *fpdf.Fpdf
	opts   Options
	tr     func(string) string
	images int
}

func New(opts Options) *Document {
	if opts.Page == "" {
		opts.Page = PageA4
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		SizeStr:        string(opts.Page),
	})
	pdf.SetMargins(opts.MarginLeft, opts.MarginTop, opts.MarginRight)
	pdf.SetAutoPageBreak(false, opts.MarginBottom)
	pdf.SetCompression(opts.Compress)
	created := opts.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	pdf.SetCreationDate(created)
	if opts.Title != "" {
		pdf.SetTitle(opts.Title, true)
	}
	if opts.Creator != "" {
		pdf.SetCreator(opts.Creator, true)
	}
	pdf.AddPage()

	return &Document{
		pdf:  pdf,
		opts: opts,
		tr:   pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

// Header draws the centered title followed by the gray attribution and
// subtitle lines.
func (d *Document) Header(h Header) {
	size := h.TitleSize
	if size <= 0 {
		size = 22
	}
	width := d.contentWidth()

	d.pdf.SetFont(fontFamily, "B", size)
	d.pdf.SetTextColor(0, 0, 0)
	d.pdf.SetX(d.opts.MarginLeft)
	d.pdf.CellFormat(width, size+2, d.tr(h.Title), "", 1, "CM", false, 0, "")

	d.pdf.SetTextColor(subtleText.R, subtleText.G, subtleText.B)
	if h.Attribution != "" {
		style := ""
		if h.AttributionItalic {
			style = "I"
		}
		d.pdf.Ln(4)
		d.pdf.SetFont(fontFamily, style, 10)
		d.pdf.SetX(d.opts.MarginLeft)
		d.pdf.CellFormat(width, 10*lineFactor, d.tr(h.Attribution), "", 1, "CM", false, 0, "")
	}
	if h.Subtitle != "" {
		d.pdf.Ln(2)
		d.pdf.SetFont(fontFamily, "", 10)
		d.pdf.SetX(d.opts.MarginLeft)
		d.pdf.CellFormat(width, 10*lineFactor, d.tr(h.Subtitle), "", 1, "CM", false, 0, "")
	}
	d.pdf.SetTextColor(0, 0, 0)
	d.Spacer(12)
}

// Section writes a bold heading above the next table.
func (d *Document) Section(heading string) {
	const size = 14
	d.ensureSpace(size*lineFactor + 40)
	d.pdf.SetFont(fontFamily, "B", size)
	d.pdf.SetTextColor(0, 0, 0)
	d.pdf.SetX(d.opts.MarginLeft)
	d.pdf.CellFormat(d.contentWidth(), size*lineFactor, d.tr(heading), "", 1, "LM", false, 0, "")
	d.Spacer(6)
}

// Spacer advances the cursor without drawing.
func (d *Document) Spacer(height float64) {
	if height <= 0 {
		return
	}
	if d.pdf.GetY()+height > d.bottomLimit() {
		d.pdf.AddPage()
		return
	}
	d.pdf.Ln(height)
}

// PageCount reports how many pages have been started.
func (d *Document) PageCount() int {
	return d.pdf.PageCount()
}

// Bytes finalizes the document. It must be called once.
func (d *Document) Bytes() ([]byte, error) {
	if err := d.pdf.Error(); err != nil {
		return nil, errors.Wrap(err, "render pdf")
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := d.pdf.Output(buf); err != nil {
		return nil, errors.Wrap(err, "write pdf")
	}

	out := make([]byte, buf.Len())
	copy(out, buf.B)
	return out, nil
}

func (d *Document) contentWidth() float64 {
	w, _ := d.pdf.GetPageSize()
	return w - d.opts.MarginLeft - d.opts.MarginRight
}

func (d *Document) bottomLimit() float64 {
	_, h := d.pdf.GetPageSize()
	return h - d.opts.MarginBottom
}

// ensureSpace starts a new page when height does not fit; it reports whether
// it did.
func (d *Document) ensureSpace(height float64) bool {
	if d.pdf.GetY()+height <= d.bottomLimit() {
		return false
	}
	d.pdf.AddPage()
	return true
}
