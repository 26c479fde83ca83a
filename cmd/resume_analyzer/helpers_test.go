package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/llm"
)

const sampleResume = `Jane Doe
jane@example.com

Professional Experience
Senior Software Engineer, Acme Corporation 2019 - 2023
• Led migration of 40 services to Kubernetes on AWS
• Reduced p99 latency by 35% using Redis caching
Globex Inc. | Backend Developer | 2016 – 2019
- Built payment APIs in Go and Docker
- Responsible for on-call rotation

Education
BS in Computer Science, Stanford University, 2012 - 2016

Skills
Go, Python, PostgreSQL, Docker, Git, Leadership, Communication
`

const sampleJob = `Senior Backend Engineer
We are looking for an engineer with 5+ years of experience building distributed systems.
You will work with Go, Kubernetes, PostgreSQL and Terraform.
Bachelor's degree in Computer Science required.
`

// fakeClient answers every prompt with respond.
type fakeClient struct {
	respond func(prompt string) (string, error)
	prompts []string
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.respond(prompt)
}

func (f *fakeClient) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	return f.GenerateContent(ctx, prompt, tier)
}

func (f *fakeClient) Close() error { return nil }

// isolateEnv clears variables that would change config for a test run.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"GEMINI_API_KEY", "GEMINI_MODEL", "ENABLE_AI_SUGGESTIONS", "MAX_PROCESSING_TIME", "DATABASE_URL", "WORKERS", "LOG_JSON", "DEBUG"} {
		t.Setenv(key, "")
	}
	t.Chdir(t.TempDir())
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

type cmdResult struct {
	stdout string
	stderr string
	err    error
}

// execute runs the CLI in process with args. client, when set, replaces the LLM client.
func execute(t *testing.T, client llm.Client, args ...string) cmdResult {
	t.Helper()

	a := newApp()
	if client != nil {
		a.newClient = func(context.Context, *config.Config, *zap.Logger) (llm.Client, error) {
			return client, nil
		}
	}
	root := a.rootCmd()

	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	return cmdResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func promptContains(prompt string, parts ...string) bool {
	for _, p := range parts {
		if strings.Contains(prompt, p) {
			return true
		}
	}
	return false
}
