package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProseToolkit_Tokenize(t *testing.T) {
	tokens, err := NewProseToolkit().Tokenize("Hello, world!")
	require.NoError(t, err)

	var words, punct []string
	for _, tok := range tokens {
		if tok.IsWord() {
			words = append(words, tok.Text)
		} else {
			punct = append(punct, tok.Text)
		}
	}
	assert.Equal(t, []string{"Hello", "world"}, words)
	assert.Equal(t, []string{",", "!"}, punct)
}

func TestProseToolkit_CountWords(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{"empty", "", 0},
		{"whitespace only", " \n\t ", 0},
		{"bullets and punctuation", "Hello, world!\n\n- Managed a team of 4\n", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := CountWords(NewProseToolkit(), tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, n)
		})
	}
}

func TestProseToolkit_Deterministic(t *testing.T) {
	text := "Senior Engineer at Initech LLC. Built 12 services in Go and Python."
	first, err := NewProseToolkit().Tokenize(text)
	require.NoError(t, err)
	second, err := NewProseToolkit().Tokenize(text)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestProseToolkit_Recognize(t *testing.T) {
	org, ok, err := FirstOrganization(NewProseToolkit(), "Engineer at Umbrella Corp, later Wayne Holdings")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Umbrella Corp", org)
}

func TestProseToolkit_InvalidUTF8(t *testing.T) {
	tk := NewProseToolkit()

	_, err := tk.Tokenize("bad \xff byte")
	var tkErr *ToolkitError
	require.ErrorAs(t, err, &tkErr)
	assert.Equal(t, "tokenize", tkErr.Op)

	_, err = tk.Recognize("bad \xff byte")
	require.ErrorAs(t, err, &tkErr)
	assert.Equal(t, "recognize", tkErr.Op)
}

func TestIsPunctToken(t *testing.T) {
	assert.True(t, isPunctToken("-"))
	assert.True(t, isPunctToken("..."))
	assert.False(t, isPunctToken("C++"))
	assert.False(t, isPunctToken("4"))
}
