package nlp

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/jdkato/prose/v2"
)

// ProseToolkit tokenizes with prose's iterative tokenizer and recognises organisations
// with the rule-based recognizer. prose's bundled entity model labels only PERSON and GPE
// spans, so it cannot supply ORG entities. Safe for concurrent use.
type ProseToolkit struct {
	rules RuleToolkit
}

// NewProseToolkit returns the default toolkit used by the engine.
func NewProseToolkit() *ProseToolkit {
	return &ProseToolkit{}
}

// Recognize returns ORG entities found in text.
func (p ProseToolkit) Recognize(text string) ([]Entity, error) {
	return p.rules.Recognize(text)
}

// Tokenize splits text into word and punctuation tokens. Tagging, sentence segmentation and
// entity extraction are disabled, so the result depends only on the input.
func (ProseToolkit) Tokenize(text string) (tokens []Token, err error) {
	if !utf8.ValidString(text) {
		return nil, &ToolkitError{Op: "tokenize", Cause: errInvalidUTF8}
	}

	defer func() {
		if r := recover(); r != nil {
			tokens, err = nil, &ToolkitError{Op: "tokenize", Cause: fmt.Errorf("prose: %v", r)}
		}
	}()

	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, &ToolkitError{Op: "tokenize", Cause: err}
	}

	for _, tok := range doc.Tokens() {
		tokens = append(tokens, Token{Text: tok.Text, IsPunct: isPunctToken(tok.Text)})
	}
	return tokens, nil
}

// isPunctToken reports whether a token holds no letters or digits.
func isPunctToken(text string) bool {
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
