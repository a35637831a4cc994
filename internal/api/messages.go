package api

import (
	"net/http"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/katalvlaran/vertexcover/cover"
)

// LangParam is the query parameter that overrides Accept-Language.
const LangParam = "lang"

// Message keys double as the English text.
const (
	msgEmpty      = "No towers placed. Fire spreads everywhere!"
	msgInvalid    = "Your towers did not stop the fire. Uncovered paths: %s"
	msgOptimal    = "🎉 Congratulations! You placed the minimum towers and stopped the fire!"
	msgSuboptimal = "You stopped the fire, but used %d towers (minimum is %d)."
	msgAnomalous  = "You used fewer than the minimum but still covered all paths (unexpected!)."
	msgUnknown    = "Fire stopped, but optimal solution could not be calculated (graph too large)."
)

var supportedTags = []language.Tag{language.English, language.Spanish}

var (
	matcher  = language.NewMatcher(supportedTags)
	messages = mustCatalog()
)

func mustCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	entries := map[language.Tag]map[string]string{
		language.English: {
			msgEmpty:      msgEmpty,
			msgInvalid:    msgInvalid,
			msgOptimal:    msgOptimal,
			msgSuboptimal: msgSuboptimal,
			msgAnomalous:  msgAnomalous,
			msgUnknown:    msgUnknown,
		},
		language.Spanish: {
			msgEmpty:      "No se colocaron torres. ¡El fuego se propaga por todas partes!",
			msgInvalid:    "Tus torres no detuvieron el fuego. Caminos sin cubrir: %s",
			msgOptimal:    "🎉 ¡Felicidades! Colocaste el mínimo de torres y detuviste el fuego.",
			msgSuboptimal: "Detuviste el fuego, pero usaste %d torres (el mínimo es %d).",
			msgAnomalous:  "Usaste menos torres que el mínimo y aun así cubriste todos los caminos (¡inesperado!).",
			msgUnknown:    "Fuego detenido, pero no se pudo calcular la solución óptima (grafo demasiado grande).",
		},
	}
	for tag, msgs := range entries {
		for key, msg := range msgs {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
	return b
}

// ResolveTag picks the response language from the lang query parameter, then
// Accept-Language, defaulting to English.
func ResolveTag(r *http.Request) language.Tag {
	if r == nil {
		return language.English
	}
	var tags []language.Tag
	if v := strings.TrimSpace(r.URL.Query().Get(LangParam)); v != "" {
		if tag, err := language.Parse(v); err == nil {
			tags = append(tags, tag)
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if parsed, _, err := language.ParseAcceptLanguage(accept); err == nil {
			tags = append(tags, parsed...)
		}
	}
	if len(tags) == 0 {
		return language.English
	}
	_, idx, _ := matcher.Match(tags...)
	return supportedTags[idx]
}

// Printer returns a printer over the evaluation catalog.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(messages))
}

// Message renders the player-facing text for an evaluation.
func Message(p *message.Printer, res cover.EvaluationResult) string {
	switch res.Outcome {
	case cover.EmptyPlacement:
		return p.Sprintf(msgEmpty)
	case cover.InvalidCover:
		return p.Sprintf(msgInvalid, formatEdges(res.Check.Uncovered))
	case cover.Optimal:
		return p.Sprintf(msgOptimal)
	case cover.SuboptimalValid:
		size, _ := res.OptimalSize()
		return p.Sprintf(msgSuboptimal, res.SelectedSize, size)
	case cover.AnomalousBetterThanOptimum:
		return p.Sprintf(msgAnomalous)
	default:
		return p.Sprintf(msgUnknown)
	}
}

// formatEdges renders edges as "[[0, 1], [1, 2]]".
func formatEdges(edges []cover.Edge) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range edges {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('[')
		sb.WriteString(strconv.Itoa(e.U()))
		sb.WriteString(", ")
		sb.WriteString(strconv.Itoa(e.V()))
		sb.WriteByte(']')
	}
	sb.WriteByte(']')
	return sb.String()
}
