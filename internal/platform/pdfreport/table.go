package pdfreport

import (
	"bytes"
	"strconv"

	"github.com/go-pdf/fpdf"

	"github.com/riskibarqy/marcador-reportes/internal/platform/logo"
)

const ellipsis = "..."

// Cell is one table value: text, or an image outcome with a text fallback.
type Cell struct {
	Text        string
	Image       *logo.Outcome
	ImageSize   float64
	Placeholder string
}

func Text(v string) Cell {
	return Cell{Text: v}
}

// Logo renders outcome as a size x size image, or placeholder text when the
// outcome carries no image.
func Logo(outcome logo.Outcome, size float64, placeholder string) Cell {
	return Cell{Image: &outcome, ImageSize: size, Placeholder: placeholder}
}

func (c Cell) hasImage() bool {
	return c.Image != nil && c.Image.OK()
}

// Table is a header row plus body rows. Widths are in points; when they do
// not match Columns the content width is split evenly.
type Table struct {
	Columns   []string
	Widths    []float64
	BodyAlign map[int]Align
	Rows      [][]Cell
	Style     TableStyle
}

type tableLayout struct {
	x       float64
	widths  []float64
	total   float64
	headerH float64
	bodyH   float64
	style   TableStyle
}

// Table draws t centered on the page, breaking pages between rows.
func (d *Document) Table(t Table) {
	if len(t.Columns) == 0 {
		return
	}

	layout := d.layoutTable(t)

	firstRow := layout.headerH
	if len(t.Rows) > 0 {
		firstRow += layout.rowHeight(t.Rows[0])
	}
	d.ensureSpace(firstRow)

	top := d.pdf.GetY()
	d.drawHeader(t, layout)

	for i, row := range t.Rows {
		height := layout.rowHeight(row)
		if d.pdf.GetY()+height > d.bottomLimit() {
			d.drawBorder(layout, top)
			d.pdf.AddPage()
			top = d.pdf.GetY()
			if layout.style.RepeatHeader {
				d.drawHeader(t, layout)
			}
		}
		d.drawRow(t, layout, i, row, height)
	}

	d.drawBorder(layout, top)
	d.pdf.SetX(d.opts.MarginLeft)
}

func (d *Document) layoutTable(t Table) tableLayout {
	style := t.Style.normalized()
	content := d.contentWidth()

	widths := t.Widths
	if len(widths) != len(t.Columns) {
		widths = make([]float64, len(t.Columns))
		for i := range widths {
			widths[i] = content / float64(len(t.Columns))
		}
	}

	total := 0.0
	for _, w := range widths {
		total += w
	}
	x := d.opts.MarginLeft
	if total < content {
		x += (content - total) / 2
	}

	return tableLayout{
		x:       x,
		widths:  widths,
		total:   total,
		headerH: style.HeaderFontSize*lineFactor + style.PaddingY + style.HeaderPaddingBottom,
		bodyH:   style.BodyFontSize*lineFactor + 2*style.PaddingY,
		style:   style,
	}
}

func (l tableLayout) rowHeight(row []Cell) float64 {
	height := l.bodyH
	for _, cell := range row {
		if cell.Image == nil {
			continue
		}
		if h := cell.ImageSize + 2*l.style.PaddingY; h > height {
			height = h
		}
	}
	return height
}

func (d *Document) drawHeader(t Table, l tableLayout) {
	style := l.style
	d.pdf.SetFont(fontFamily, "B", style.HeaderFontSize)
	d.pdf.SetCellMargin(style.PaddingX)
	d.pdf.SetFillColor(style.HeaderFill.R, style.HeaderFill.G, style.HeaderFill.B)
	d.pdf.SetTextColor(style.HeaderText.R, style.HeaderText.G, style.HeaderText.B)
	d.pdf.SetDrawColor(style.GridColor.R, style.GridColor.G, style.GridColor.B)
	d.pdf.SetLineWidth(style.GridWidth)

	y := d.pdf.GetY()
	x := l.x
	for i, column := range t.Columns {
		w := l.widths[i]
		d.pdf.SetXY(x, y)
		d.pdf.CellFormat(w, l.headerH, d.fit(column, w, style.PaddingX), "1", 0, "CM", true, 0, "")
		x += w
	}
	d.pdf.SetXY(l.x, y+l.headerH)
}

func (d *Document) drawRow(t Table, l tableLayout, index int, row []Cell, height float64) {
	style := l.style
	fill := style.ZebraFills[index%len(style.ZebraFills)]

	d.pdf.SetFont(fontFamily, "", style.BodyFontSize)
	d.pdf.SetCellMargin(style.PaddingX)
	d.pdf.SetFillColor(fill.R, fill.G, fill.B)
	d.pdf.SetTextColor(style.BodyText.R, style.BodyText.G, style.BodyText.B)
	d.pdf.SetDrawColor(style.GridColor.R, style.GridColor.G, style.GridColor.B)
	d.pdf.SetLineWidth(style.GridWidth)

	y := d.pdf.GetY()
	x := l.x
	for i := range t.Columns {
		w := l.widths[i]
		var cell Cell
		if i < len(row) {
			cell = row[i]
		}

		align := AlignCenter
		if override, ok := t.BodyAlign[i]; ok {
			align = override
		}

		text := cell.Text
		if cell.Image != nil && !cell.hasImage() {
			text = cell.Placeholder
		}

		d.pdf.SetXY(x, y)
		if cell.hasImage() {
			d.pdf.CellFormat(w, height, "", "1", 0, "CM", true, 0, "")
			if !d.drawImage(*cell.Image, x, y, w, height, cell.ImageSize) {
				d.pdf.SetXY(x, y)
				d.pdf.CellFormat(w, height, d.fit(cell.Placeholder, w, style.PaddingX), "1", 0, "CM", false, 0, "")
			}
		} else {
			d.pdf.CellFormat(w, height, d.fit(text, w, style.PaddingX), "1", 0, string(align)+"M", true, 0, "")
		}
		x += w
	}
	d.pdf.SetXY(l.x, y+height)
}

// drawImage embeds outcome centered in the cell box. It reports false when
// fpdf rejects the data; the document error is cleared in that case.
func (d *Document) drawImage(outcome logo.Outcome, x, y, w, h, size float64) bool {
	if !d.pdf.Ok() {
		return false
	}

	d.images++
	name := "logo-" + strconv.Itoa(d.images)
	opts := fpdf.ImageOptions{ImageType: outcome.ImageType}
	info := d.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(outcome.Data))
	if info == nil || !d.pdf.Ok() {
		d.pdf.ClearError()
		return false
	}

	if size <= 0 || size > h {
		size = h
	}
	if size > w {
		size = w
	}
	iw, ih := size, size
	if info.Width() > 0 && info.Height() > 0 {
		ratio := info.Width() / info.Height()
		if ratio > 1 {
			ih = size / ratio
		} else {
			iw = size * ratio
		}
	}

	d.pdf.ImageOptions(name, x+(w-iw)/2, y+(h-ih)/2, iw, ih, false, opts, 0, "")
	if !d.pdf.Ok() {
		d.pdf.ClearError()
		return false
	}
	return true
}

func (d *Document) drawBorder(l tableLayout, top float64) {
	if l.style.BorderWidth <= 0 {
		return
	}
	bottom := d.pdf.GetY()
	if bottom <= top {
		return
	}
	c := l.style.BorderColor
	d.pdf.SetDrawColor(c.R, c.G, c.B)
	d.pdf.SetLineWidth(l.style.BorderWidth)
	d.pdf.Rect(l.x, top, l.total, bottom-top, "D")
}

// fit translates v and trims it so it stays inside a column of width w.
func (d *Document) fit(v string, w, padding float64) string {
	out := d.tr(v)
	limit := w - 2*padding
	if limit <= 0 || d.pdf.GetStringWidth(out) <= limit {
		return out
	}
	for len(out) > 0 && d.pdf.GetStringWidth(out+ellipsis) > limit {
		out = out[:len(out)-1]
	}
	return out + ellipsis
}
