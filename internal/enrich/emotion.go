// Package enrich invokes the optional external emotion classifier. The
// collaborator is a subprocess (in production a Python transformers wrapper)
// that reads a JSON array of text snippets from stdin and writes an
// equal-length JSON array of label strings to stdout.
//
// Failure of any kind — missing binary, non-zero exit, timeout, malformed or
// length-mismatched output — is recovered by the caller: records simply lack
// an emotion label. Nothing in this package may fail a dataset load.
package enrich

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout bounds one classifier invocation.
const DefaultTimeout = 30 * time.Second

// ErrLengthMismatch indicates the classifier returned a label sequence whose
// length does not match the input sequence.
var ErrLengthMismatch = errors.New("emotion classifier returned wrong label count")

// EmotionClassifier labels a batch of text snippets, one label per snippet in
// order. Implementations must honor the context.
type EmotionClassifier interface {
	Labels(ctx context.Context, texts []string) ([]string, error)
}

// CommandClassifier runs an external command as the classifier.
type CommandClassifier struct {
	// Command is the program plus fixed arguments, e.g.
	// ["python3", "research/infer_emotion.py"]. Empty means disabled.
	Command []string
	// Timeout per invocation; DefaultTimeout when zero.
	Timeout time.Duration
}

// Enabled reports whether a command is configured at all.
func (c *CommandClassifier) Enabled() bool { return len(c.Command) > 0 }

// Labels feeds texts to the external command as a JSON array and decodes the
// label array it prints. The subprocess is killed when the deadline passes.
func (c *CommandClassifier) Labels(ctx context.Context, texts []string) ([]string, error) {
	if !c.Enabled() {
		return nil, errors.New("emotion classifier not configured")
	}
	if len(texts) == 0 {
		return nil, nil
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	input, err := json.Marshal(texts)
	if err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, c.Command[0], c.Command[1:]...)
	cmd.Stdin = bytes.NewReader(input)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return nil, err
	}

	var labels []string
	if err := json.Unmarshal(bytes.TrimSpace(stdout.Bytes()), &labels); err != nil {
		return nil, err
	}
	if len(labels) != len(texts) {
		return nil, ErrLengthMismatch
	}
	for i, l := range labels {
		labels[i] = strings.ToLower(strings.TrimSpace(l))
	}
	return labels, nil
}
