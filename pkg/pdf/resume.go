package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/unidoc/unipdf/v3/creator"
	"github.com/unidoc/unipdf/v3/model"

	"go-jobboard-backend/internal/domain"
)

const placeholder = "Não informado"

var (
	bandColor    = creator.ColorRGBFromHex("#1f2937")
	badgeColor   = creator.ColorRGBFromHex("#374151")
	accentColor  = creator.ColorRGBFromHex("#2563eb")
	bodyColor    = creator.ColorRGBFromHex("#111827")
	mutedColor   = creator.ColorRGBFromHex("#6b7280")
	whiteColor   = creator.ColorRGBFromHex("#ffffff")
	dividerColor = creator.ColorRGBFromHex("#e5e7eb")
)

const (
	pageWidth  = 595.28 // A4 portrait, points
	bandHeight = 96.0
	marginX    = 48.0
)

// RenderResume lays a résumé out as a single PDF document. The header band
// and footer repeat on every page; long sections flow across page breaks.
func RenderResume(resume *domain.Resume) ([]byte, error) {
	regular, err := model.NewStandard14Font(model.HelveticaName)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	bold, err := model.NewStandard14Font(model.HelveticaBoldName)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}

	c := creator.New()
	c.SetPageSize(creator.PageSizeA4)
	c.SetPageMargins(marginX, marginX, bandHeight+28, 64)

	c.DrawHeader(func(block *creator.Block, args creator.HeaderFunctionArgs) {
		drawHeaderBand(c, block, resume, regular, bold)
	})
	c.DrawFooter(func(block *creator.Block, args creator.FooterFunctionArgs) {
		drawFooter(c, block, regular, args.PageNum, args.TotalPages)
	})

	drawSection(c, regular, bold, "Objetivo", resume.Objective)
	drawSection(c, regular, bold, "Formação", resume.Education)
	drawSection(c, regular, bold, "Experiencia", resume.Experience)
	drawSkills(c, regular, bold, resume.Skills)

	var buf bytes.Buffer
	if err := c.Write(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func drawHeaderBand(c *creator.Creator, block *creator.Block, resume *domain.Resume, regular, bold *model.PdfFont) {
	band := c.NewRectangle(0, 0, pageWidth, bandHeight)
	band.SetFillColor(bandColor)
	band.SetBorderWidth(0)
	block.Draw(band)

	name := strings.TrimSpace(resume.FullName)
	if name == "" {
		name = placeholder
	}
	title := c.NewParagraph(name)
	title.SetFont(bold)
	title.SetFontSize(20)
	title.SetColor(whiteColor)
	title.SetPos(marginX, 26)
	block.Draw(title)

	contact := c.NewParagraph(contactLine(resume))
	contact.SetFont(regular)
	contact.SetFontSize(10)
	contact.SetColor(whiteColor)
	contact.SetPos(marginX, 54)
	block.Draw(contact)

	if resume.Age > 0 {
		badge := c.NewRectangle(pageWidth-marginX-72, 30, 72, 26)
		badge.SetFillColor(badgeColor)
		badge.SetBorderWidth(0)
		block.Draw(badge)

		age := c.NewParagraph(fmt.Sprintf("%d anos", resume.Age))
		age.SetFont(bold)
		age.SetFontSize(11)
		age.SetColor(whiteColor)
		age.SetPos(pageWidth-marginX-60, 37)
		block.Draw(age)
	}
}

func drawFooter(c *creator.Creator, block *creator.Block, regular *model.PdfFont, pageNum, totalPages int) {
	generated := c.NewParagraph("Gerado em " + time.Now().Format("02/01/2006"))
	generated.SetFont(regular)
	generated.SetFontSize(8)
	generated.SetColor(mutedColor)
	generated.SetPos(marginX, 20)
	block.Draw(generated)

	pages := c.NewParagraph(fmt.Sprintf("Página %d de %d", pageNum, totalPages))
	pages.SetFont(regular)
	pages.SetFontSize(8)
	pages.SetColor(mutedColor)
	pages.SetPos(pageWidth-marginX-80, 20)
	block.Draw(pages)
}

func drawSection(c *creator.Creator, regular, bold *model.PdfFont, heading, body string) {
	h := c.NewParagraph(heading)
	h.SetFont(bold)
	h.SetFontSize(13)
	h.SetColor(accentColor)
	h.SetMargins(0, 0, 14, 4)
	c.Draw(h)

	rule := c.NewLine(0, 0, pageWidth-2*marginX, 0)
	rule.SetColor(dividerColor)
	rule.SetLineWidth(1)
	c.Draw(rule)

	text := strings.TrimSpace(body)
	if text == "" {
		text = placeholder
	}
	p := c.NewParagraph(text)
	p.SetFont(regular)
	p.SetFontSize(10.5)
	p.SetColor(bodyColor)
	p.SetLineHeight(1.45)
	p.SetMargins(0, 0, 8, 6)
	p.SetEnableWrap(true)
	c.Draw(p)
}

func drawSkills(c *creator.Creator, regular, bold *model.PdfFont, skills string) {
	h := c.NewParagraph("Habilidades")
	h.SetFont(bold)
	h.SetFontSize(13)
	h.SetColor(accentColor)
	h.SetMargins(0, 0, 14, 4)
	c.Draw(h)

	rule := c.NewLine(0, 0, pageWidth-2*marginX, 0)
	rule.SetColor(dividerColor)
	rule.SetLineWidth(1)
	c.Draw(rule)

	items := SplitSkills(skills)
	text := placeholder
	if len(items) > 0 {
		text = strings.Join(items, "   •   ")
	}
	p := c.NewParagraph(text)
	p.SetFont(regular)
	p.SetFontSize(10.5)
	p.SetColor(bodyColor)
	p.SetLineHeight(1.6)
	p.SetMargins(0, 0, 8, 6)
	p.SetEnableWrap(true)
	c.Draw(p)
}

// SplitSkills turns the comma-separated skills field into trimmed,
// non-empty entries.
func SplitSkills(skills string) []string {
	var out []string
	for _, part := range strings.Split(skills, ",") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func contactLine(resume *domain.Resume) string {
	var parts []string
	if s := strings.TrimSpace(resume.ContactEmail); s != "" {
		parts = append(parts, s)
	}
	if s := strings.TrimSpace(resume.ContactPhone); s != "" {
		parts = append(parts, s)
	}
	if len(parts) == 0 {
		return placeholder
	}
	return strings.Join(parts, "  |  ")
}
