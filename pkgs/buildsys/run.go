package buildsys

import (
	"bytes"
	"context"
	"errors"
	"io"
	"maps"
	"os"
	"os/exec"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// maxCapture bounds how much stderr a ToolError keeps.
const maxCapture = 64 << 10

// Command is one invocation of an external build tool.
type Command struct {
	Path   string
	Args   []string
	Dir    string
	Env    map[string]string // merged over the process environment
	Stdout io.Writer
	Stderr io.Writer
	Log    *log.Logger
}

// ToolError reports a failed tool invocation. Its message carries the
// tool's own stderr output verbatim.
type ToolError struct {
	Tool     string
	Args     []string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ToolError) Error() string {
	var b strings.Builder
	b.WriteString(e.Tool)
	for _, a := range e.Args {
		b.WriteByte(' ')
		b.WriteString(a)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	if out := strings.TrimSpace(e.Stderr); out != "" {
		b.WriteByte('\n')
		b.WriteString(out)
	}
	return b.String()
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// Run executes cmd and waits for it. Output streams to cmd.Stdout and
// cmd.Stderr; the tail of stderr is also kept for the returned *ToolError.
func Run(ctx context.Context, cmd Command) error {
	c := exec.CommandContext(ctx, cmd.Path, cmd.Args...)
	c.Dir = cmd.Dir
	if len(cmd.Env) > 0 {
		c.Env = MergeEnv(os.Environ(), cmd.Env)
	}

	stdout, stderr := cmd.Stdout, cmd.Stderr
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}
	tail := &tailBuffer{max: maxCapture}
	c.Stdout = stdout
	c.Stderr = io.MultiWriter(stderr, tail)

	if cmd.Log != nil {
		cmd.Log.Debug("exec", "cmd", cmd.Path+" "+strings.Join(cmd.Args, " "), "dir", cmd.Dir)
	}
	err := c.Run()
	if err == nil {
		return nil
	}
	code := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	}
	return &ToolError{
		Tool:     cmd.Path,
		Args:     slices.Clone(cmd.Args),
		ExitCode: code,
		Stderr:   tail.String(),
		Err:      err,
	}
}

// MergeEnv returns base with override applied, sorted by key.
func MergeEnv(base []string, override map[string]string) []string {
	envMap := make(map[string]string, len(base)+len(override))
	for _, kv := range base {
		if k, v, ok := strings.Cut(kv, "="); ok {
			envMap[k] = v
		}
	}
	maps.Copy(envMap, override)
	keys := slices.Sorted(maps.Keys(envMap))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+"="+envMap[k])
	}
	return out
}

// tailBuffer keeps the last max bytes written to it.
type tailBuffer struct {
	mu        sync.Mutex
	buf       bytes.Buffer
	max       int
	truncated int
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := len(p)
	t.buf.Write(p)
	if over := t.buf.Len() - t.max; over > 0 {
		t.truncated += over
		t.buf.Next(over)
	}
	return n, nil
}

func (t *tailBuffer) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.truncated == 0 {
		return t.buf.String()
	}
	return "... (" + strconv.Itoa(t.truncated) + " bytes truncated)\n" + t.buf.String()
}
