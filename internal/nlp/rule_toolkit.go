package nlp

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var errInvalidUTF8 = errors.New("text is not valid UTF-8")

// wordPattern matches a word-like token together with inner punctuation ("Ph.D.", "AT&T", "O'Neil").
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}&][\p{L}\p{N}&'’.\-]*`)

// Words that close an organisation name.
var orgSuffixes = map[string]struct{}{
	"inc": {}, "llc": {}, "ltd": {}, "corp": {}, "corporation": {}, "company": {}, "co": {},
	"technologies": {}, "systems": {}, "solutions": {}, "labs": {}, "group": {},
	"university": {}, "college": {}, "institute": {}, "school": {}, "academy": {},
	"bank": {}, "partners": {}, "consulting": {}, "software": {}, "services": {}, "holdings": {},
}

// Words that mark an organisation anywhere in a capitalised run ("University of Texas").
var orgLeads = map[string]struct{}{
	"university": {}, "college": {}, "institute": {}, "school": {}, "academy": {}, "bank": {},
}

// Lower-case words allowed inside a capitalised run.
var connectors = map[string]struct{}{
	"of": {}, "and": {}, "&": {}, "for": {}, "the": {},
}

// Abbreviations that keep their trailing period.
var abbreviations = map[string]struct{}{
	"inc.": {}, "co.": {}, "corp.": {}, "ltd.": {}, "ph.d.": {}, "jr.": {}, "sr.": {}, "st.": {},
}

// RuleToolkit is a deterministic, dictionary-driven Toolkit.
// Organisations are capitalised word runs that end in a company suffix or contain an
// institution keyword. It holds no state and is safe for concurrent use.
type RuleToolkit struct{}

// NewRuleToolkit returns the default rule-based toolkit.
func NewRuleToolkit() *RuleToolkit {
	return &RuleToolkit{}
}

type span struct {
	text       string
	start, end int
}

func words(text string) []span {
	locs := wordPattern.FindAllStringIndex(text, -1)
	out := make([]span, 0, len(locs))
	for _, loc := range locs {
		start, end := loc[0], loc[1]
		w := text[start:end]
		// Trailing periods and dashes belong to the sentence, not the word.
		for len(w) > 1 && (strings.HasSuffix(w, ".") || strings.HasSuffix(w, "-")) {
			if _, ok := abbreviations[strings.ToLower(w)]; ok {
				break
			}
			w = w[:len(w)-1]
			end--
		}
		out = append(out, span{text: w, start: start, end: end})
	}
	return out
}

// Recognize returns ORG entities found in text.
func (RuleToolkit) Recognize(text string) ([]Entity, error) {
	if !utf8.ValidString(text) {
		return nil, &ToolkitError{Op: "recognize", Cause: errInvalidUTF8}
	}

	ws := words(text)
	var entities []Entity
	var run []span

	flush := func() {
		// A run never ends on a connector.
		for len(run) > 0 && isConnector(run[len(run)-1].text) {
			run = run[:len(run)-1]
		}
		if len(run) > 0 && isOrganization(run) {
			start, end := run[0].start, run[len(run)-1].end
			entities = append(entities, Entity{
				Text:  text[start:end],
				Label: LabelOrg,
				Start: start,
				End:   end,
			})
		}
		run = run[:0]
	}

	for _, w := range ws {
		if len(run) > 0 && !onlyBlanks(text[run[len(run)-1].end:w.start]) {
			flush()
		}
		switch {
		case isCapitalized(w.text):
			run = append(run, w)
		case len(run) > 0 && isConnector(w.text):
			run = append(run, w)
		default:
			flush()
		}
	}
	flush()

	return entities, nil
}

// Tokenize splits text on whitespace and peels leading and trailing punctuation into
// separate tokens. Whitespace itself is never emitted.
func (RuleToolkit) Tokenize(text string) ([]Token, error) {
	if !utf8.ValidString(text) {
		return nil, &ToolkitError{Op: "tokenize", Cause: errInvalidUTF8}
	}

	var tokens []Token
	for _, field := range strings.Fields(text) {
		if _, ok := abbreviations[strings.ToLower(field)]; ok {
			tokens = append(tokens, Token{Text: field})
			continue
		}
		core := strings.TrimFunc(field, isPunctRune)
		if core == "" {
			for _, r := range field {
				tokens = append(tokens, Token{Text: string(r), IsPunct: true})
			}
			continue
		}
		idx := strings.Index(field, core)
		for _, r := range field[:idx] {
			tokens = append(tokens, Token{Text: string(r), IsPunct: true})
		}
		tokens = append(tokens, Token{Text: core})
		for _, r := range field[idx+len(core):] {
			tokens = append(tokens, Token{Text: string(r), IsPunct: true})
		}
	}
	return tokens, nil
}

func isPunctRune(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '+' && r != '#'
}

func isCapitalized(word string) bool {
	r, _ := utf8.DecodeRuneInString(word)
	return unicode.IsUpper(r)
}

func isConnector(word string) bool {
	_, ok := connectors[word]
	return ok
}

func onlyBlanks(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' {
			return false
		}
	}
	return true
}

func normalizeWord(word string) string {
	return strings.TrimSuffix(strings.ToLower(word), ".")
}

func isOrganization(run []span) bool {
	if _, ok := orgSuffixes[normalizeWord(run[len(run)-1].text)]; ok {
		return true
	}
	for _, w := range run {
		if _, ok := orgLeads[normalizeWord(w.text)]; ok {
			return true
		}
	}
	return false
}
