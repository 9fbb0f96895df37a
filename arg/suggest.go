package arg

import "github.com/sahilm/fuzzy"

// Suggest ranks declared argument names by fuzzy similarity to the given
// token, best match first. Callers can use it to offer "did you mean"
// hints for tokens the parser ignored; the parser itself logs the top
// suggestion at debug level.
func (p *Parser) Suggest(token string) []string {
	if token == "" || len(p.args) == 0 {
		return nil
	}

	names := make([]string, len(p.args))
	for i, a := range p.args {
		names[i] = a.Name
	}

	matches := fuzzy.Find(token, names)
	if len(matches) == 0 {
		return nil
	}

	ranked := make([]string, len(matches))
	for i, m := range matches {
		ranked[i] = m.Str
	}

	return ranked
}
