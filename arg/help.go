package arg

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Help rendering styles. Rendering degrades to plain text when the output
// color profile supports no styling.
//
//nolint:gochecknoglobals
var (
	programStyle = lipgloss.NewStyle().Bold(true)
	nameStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	colonStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	annotStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	epilogStyle  = lipgloss.NewStyle().Faint(true)
)

// noSymIndent aligns long names of arguments without a short symbol with
// those rendered as "-x, --name".
const noSymIndent = "    "

// WriteHelp renders the help message to w: an optional usage and
// description header, one line per declared argument in declaration
// order, and an optional epilog trailer.
func (p *Parser) WriteHelp(w io.Writer) {
	_, _ = io.WriteString(w, p.Help())
}

// Help returns the rendered help message.
func (p *Parser) Help() string {
	var b strings.Builder

	if p.Usage != "" {
		b.WriteString(programStyle.Render(p.Usage))
		b.WriteByte('\n')
	}

	if p.Description != "" {
		b.WriteString(p.Description)
		b.WriteByte('\n')
	}

	if b.Len() > 0 && len(p.args) > 0 {
		b.WriteByte('\n')
	}

	for _, a := range p.args {
		switch a.Kind {
		case KindFlag:
			b.WriteString(p.flagHelp(a))

		case KindKeyValue:
			b.WriteString(p.keyValueHelp(a))

		case KindPositional:
			b.WriteString(p.positionalHelp(a))
		}

		b.WriteByte('\n')
	}

	if p.Epilog != "" {
		b.WriteByte('\n')
		b.WriteString(epilogStyle.Render(p.Epilog))
		b.WriteByte('\n')
	}

	return b.String()
}

// flagHelp renders a flag line: short/long form and help text.
func (p *Parser) flagHelp(a *Argument) string {
	return "  " + names(a) + sep() + a.Help
}

// keyValueHelp renders a key-value line: short/long form, help text, and
// a required/default annotation.
func (p *Parser) keyValueHelp(a *Argument) string {
	line := "  " + names(a) + sep() + a.Help

	if annot := annotation(a); annot != "" {
		line += " " + annotStyle.Render(annot)
	}

	return line
}

// positionalHelp renders a positional line: short/long form, the
// required/default annotation, then the help text.
func (p *Parser) positionalHelp(a *Argument) string {
	line := "  " + names(a)

	if annot := annotation(a); annot != "" {
		line += " " + annotStyle.Render(annot)
	}

	return line + sep() + a.Help
}

// names renders the short/long form of an argument as a single styled
// segment, e.g. "-o, --output" or "    --output".
func names(a *Argument) string {
	if !a.HasSym() {
		return noSymIndent + nameStyle.Render("--"+a.Name)
	}

	return nameStyle.Render("-" + string(a.Sym) + ", --" + a.Name)
}

// sep renders the separator between the argument forms and the help text.
func sep() string {
	return " " + colonStyle.Render(":") + " "
}

// annotation builds the bracketed required/default annotation for
// value-taking arguments, e.g. "[required, default: out.txt]".
func annotation(a *Argument) string {
	part := make([]string, 0, 2)

	if a.Required {
		part = append(part, "required")
	}

	if a.HasDefault() {
		part = append(part, "default: "+a.Default)
	}

	if len(part) == 0 {
		return ""
	}

	return "[" + strings.Join(part, ", ") + "]"
}
