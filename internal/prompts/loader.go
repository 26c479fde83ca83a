// Package prompts loads the LLM prompt templates embedded from JSON files.
// Each file maps a prompt key to a template using {{.Name}} placeholders.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"sync"
)

//go:embed *.json
var promptFiles embed.FS

// cache stores parsed prompt files to avoid repeated JSON parsing
var (
	cache   = make(map[string]map[string]string)
	cacheMu sync.RWMutex
)

var placeholderPattern = regexp.MustCompile(`\{\{\.(\w+)\}\}`)

// Get retrieves a prompt by filename and key, e.g. Get("suggestions.json", "review-system").
func Get(filename, key string) (string, error) {
	prompts, err := loadFile(filename)
	if err != nil {
		return "", err
	}

	prompt, exists := prompts[key]
	if !exists {
		return "", fmt.Errorf("prompt key %q not found in %s", key, filename)
	}

	return prompt, nil
}

// MustGet retrieves a prompt by filename and key, panicking if not found.
func MustGet(filename, key string) string {
	prompt, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return prompt
}

// Format replaces {{.Key}} placeholders with values from data.
// Placeholders without a value are left in place.
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		result = strings.ReplaceAll(result, "{{."+key+"}}", value)
	}
	return result
}

// Render loads a prompt and formats it, failing if any placeholder is left unfilled.
func Render(filename, key string, data map[string]string) (string, error) {
	template, err := Get(filename, key)
	if err != nil {
		return "", err
	}

	var missing []string
	for _, m := range placeholderPattern.FindAllStringSubmatch(template, -1) {
		if _, ok := data[m[1]]; !ok {
			missing = append(missing, m[1])
		}
	}
	if len(missing) > 0 {
		return "", fmt.Errorf("prompt %s/%s: missing values for %s", filename, key, strings.Join(missing, ", "))
	}

	return Format(template, data), nil
}

func loadFile(filename string) (map[string]string, error) {
	cacheMu.RLock()
	if prompts, exists := cache[filename]; exists {
		cacheMu.RUnlock()
		return prompts, nil
	}
	cacheMu.RUnlock()

	data, err := promptFiles.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", filename, err)
	}

	var prompts map[string]string
	if err := json.Unmarshal(data, &prompts); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", filename, err)
	}

	cacheMu.Lock()
	cache[filename] = prompts
	cacheMu.Unlock()

	return prompts, nil
}
