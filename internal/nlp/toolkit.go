// Package nlp provides the entity recognition and tokenization capability used by extraction.
//
// Extraction only needs two things from a text toolkit: organisation-like spans for company
// and institution names, and a token stream for word counting. Toolkit captures exactly that,
// so a deterministic implementation can stand in for a full NLP library.
package nlp

import "fmt"

// LabelOrg marks an organisation entity.
const LabelOrg = "ORG"

// Entity is a labelled span of text.
type Entity struct {
	Text  string
	Label string
	Start int // byte offset into the recognised text
	End   int
}

// Token is a single token of text.
type Token struct {
	Text    string
	IsPunct bool
	IsSpace bool
}

// IsWord reports whether the token counts towards a word count.
func (t Token) IsWord() bool {
	return !t.IsPunct && !t.IsSpace
}

// Toolkit recognises entities and tokenizes text.
// Implementations must be safe for concurrent use.
type Toolkit interface {
	Recognize(text string) ([]Entity, error)
	Tokenize(text string) ([]Token, error)
}

// ToolkitError reports a failure inside a Toolkit
type ToolkitError struct {
	Op    string
	Cause error
}

func (e *ToolkitError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("nlp %s failed: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("nlp %s failed", e.Op)
}

func (e *ToolkitError) Unwrap() error {
	return e.Cause
}

// Organizations returns the text of every ORG entity, in order.
func Organizations(entities []Entity) []string {
	var orgs []string
	for _, ent := range entities {
		if ent.Label == LabelOrg {
			orgs = append(orgs, ent.Text)
		}
	}
	return orgs
}

// FirstOrganization runs the toolkit over text and returns the first ORG entity, if any.
func FirstOrganization(tk Toolkit, text string) (string, bool, error) {
	entities, err := tk.Recognize(text)
	if err != nil {
		return "", false, err
	}
	orgs := Organizations(entities)
	if len(orgs) == 0 {
		return "", false, nil
	}
	return orgs[0], true, nil
}

// CountWords returns the number of word tokens in text.
func CountWords(tk Toolkit, text string) (int, error) {
	tokens, err := tk.Tokenize(text)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, tok := range tokens {
		if tok.IsWord() {
			n++
		}
	}
	return n, nil
}
