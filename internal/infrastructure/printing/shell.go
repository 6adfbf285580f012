package printing

import (
	"fmt"
	"strings"

	"github.com/erp/docgen/internal/domain/document"
)

// ShellParams describes the presentation wrapper applied around a
// rendered document body before it is delivered. Settings here never
// alter the body text produced by the template engine.
type ShellParams struct {
	Title     string
	Direction document.TextDirection
	Profile   document.PaperProfile
	Layout    document.PageLayout
}

// WrapShell embeds the rendered body in a complete HTML page carrying
// the paper, direction and spacing presentation. The body is inserted
// verbatim.
func WrapShell(body string, params ShellParams) string {
	lang := "en"
	fontStack := `"Helvetica Neue", Arial, sans-serif`
	if params.Direction == document.DirectionRTL {
		lang = "ar"
		fontStack = `"Noto Sans Arabic", "Segoe UI", Tahoma, sans-serif`
	}
	if params.Profile.IsThermal() {
		fontStack = `"Courier New", Courier, monospace`
	}

	lineSpacing := params.Layout.LineSpacing
	if lineSpacing <= 0 {
		lineSpacing = document.LayoutForProfile(params.Profile).LineSpacing
	}

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n")
	fmt.Fprintf(&sb, "<html lang=%q dir=%q>\n", lang, string(params.Direction))
	sb.WriteString("<head>\n<meta charset=\"utf-8\"/>\n")
	fmt.Fprintf(&sb, "<title>%s</title>\n", htmlEscape(params.Title))
	sb.WriteString("<style>\n")
	sb.WriteString(pageCSS(params))
	fmt.Fprintf(&sb, "body { font-family: %s; line-height: %.2f; margin: 0; }\n", fontStack, lineSpacing)
	fmt.Fprintf(&sb, ".document { padding: %dmm %dmm %dmm %dmm; }\n",
		params.Layout.Padding.Top, params.Layout.Padding.Right,
		params.Layout.Padding.Bottom, params.Layout.Padding.Left)
	sb.WriteString("pre { font-family: inherit; white-space: pre-wrap; margin: 0; }\n")
	if params.Profile.IsThermal() {
		fmt.Fprintf(&sb, "body { width: %dmm; font-size: 10px; }\n", bodyWidthMM(params))
	} else {
		sb.WriteString("body { font-size: 12px; }\n")
	}
	sb.WriteString("img.qr { width: 36mm; height: 36mm; }\n")
	// The body is plain text with meaningful line breaks; <pre> keeps
	// them intact while still rendering embedded tags such as the QR img.
	sb.WriteString("</style>\n</head>\n<body>\n<div class=\"document\">\n<pre>")
	sb.WriteString(body)
	sb.WriteString("</pre>\n</div>\n</body>\n</html>\n")
	return sb.String()
}

// pageCSS emits the @page rule with the paper size. Margins are
// applied by the print surface, not here, so they are never doubled.
func pageCSS(params ShellParams) string {
	if params.Profile.IsThermal() {
		// Continuous paper: fixed width, height follows content
		return fmt.Sprintf("@page { size: %dmm auto; margin: 0; }\n", params.Profile.WidthMM())
	}
	return fmt.Sprintf("@page { size: %dmm %dmm; margin: 0; }\n",
		params.Profile.WidthMM(), params.Profile.HeightMM())
}

func bodyWidthMM(params ShellParams) int {
	w := params.Profile.WidthMM() - params.Layout.Margins.Left - params.Layout.Margins.Right
	if w < 1 {
		w = params.Profile.WidthMM()
	}
	return w
}

func htmlEscape(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
	return r.Replace(s)
}
