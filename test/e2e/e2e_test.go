package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

var (
	dirtreeBin string
	projRoot   string
)

func TestMain(m *testing.M) {
	// Build binary once for all tests
	tmpBinDir, err := os.MkdirTemp("", "dirtree-bin")
	if err != nil {
		panic(err)
	}

	dirtreeBin = filepath.Join(tmpBinDir, "dirtree")

	// Determine project root
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		panic("cannot determine current file path")
	}
	projRoot = filepath.Join(filepath.Dir(thisFile), "..", "..")
	src := filepath.Join(projRoot, "cmd", "main.go")

	cmd := exec.Command("go", "build", "-o", dirtreeBin, src)
	if out, err := cmd.CombinedOutput(); err != nil {
		panic(string(out))
	}

	code := m.Run()
	if err := os.RemoveAll(tmpBinDir); err != nil {
		panic(err)
	}
	os.Exit(code)
}

var sampleInput = []string{
	"CREATE fruits",
	"CREATE vegetables",
	"CREATE grains",
	"CREATE fruits/apples",
	"CREATE fruits/apples/fuji",
	"LIST",
	"CREATE grains/squash",
	"MOVE grains/squash vegetables",
	"CREATE foods",
	"MOVE grains foods",
	"MOVE fruits foods",
	"MOVE vegetables foods",
	"LIST",
	"DELETE fruits/apples",
	"DELETE foods/fruits/apples",
	"LIST",
}

var sampleOutput = []string{
	"CREATE fruits",
	"CREATE vegetables",
	"CREATE grains",
	"CREATE fruits/apples",
	"CREATE fruits/apples/fuji",
	"LIST",
	"fruits",
	"  apples",
	"    fuji",
	"grains",
	"vegetables",
	"CREATE grains/squash",
	"MOVE grains/squash vegetables",
	"CREATE foods",
	"MOVE grains foods",
	"MOVE fruits foods",
	"MOVE vegetables foods",
	"LIST",
	"foods",
	"  fruits",
	"    apples",
	"      fuji",
	"  grains",
	"  vegetables",
	"    squash",
	"DELETE fruits/apples",
	"Cannot delete fruits/apples - fruits does not exist",
	"DELETE foods/fruits/apples",
	"LIST",
	"foods",
	"  fruits",
	"  grains",
	"  vegetables",
	"    squash",
}

func TestE2EBatchFile(t *testing.T) {
	session := NewSession().WithCommandFile(sampleInput...).Build(t)
	stdout, stderr, err := session.Run(t)
	if err != nil {
		t.Fatalf("run failed: %v\nstderr: %s", err, stderr)
	}

	expected := strings.Join(sampleOutput, "\n") + "\n"
	if stdout != expected {
		t.Fatalf("output mismatch:\nexpected: %q\ngot:      %q", expected, stdout)
	}
}

func TestE2EBatchFileErrors(t *testing.T) {
	session := NewSession().WithCommandFile(
		"",
		"COPY a b",
		"MOVE apples",
		"CREATE fruits",
		"create fruits/",
		"CREATE fruits/apples/red",
		"MOVE fruits fruits2",
		"LIST",
	).Build(t)
	stdout, stderr, err := session.Run(t)
	if err != nil {
		t.Fatalf("run failed: %v\nstderr: %s", err, stderr)
	}

	expected := strings.Join([]string{
		"",
		"Empty command",
		"COPY a b",
		"Unknown command COPY",
		"MOVE apples",
		"Cannot MOVE apples - argument error",
		"CREATE fruits",
		"create fruits/",
		"Cannot create fruits/ - fruits already exists",
		"CREATE fruits/apples/red",
		"Cannot create fruits/apples/red - apples does not exist",
		"MOVE fruits fruits2",
		`Cannot move from fruits to fruits2 - "From" directory exist in "To" directory`,
		"LIST",
		"fruits",
	}, "\n") + "\n"
	if stdout != expected {
		t.Fatalf("output mismatch:\nexpected: %q\ngot:      %q", expected, stdout)
	}
}

func TestE2EBatchFileMissing(t *testing.T) {
	session := NewSession().WithArgs(filepath.Join(t.TempDir(), "missing.txt")).Build(t)
	stdout, _, err := session.Run(t)
	if err == nil {
		t.Fatal("expected non-zero exit for unreadable command file")
	}
	if stdout != "" {
		t.Fatalf("expected no output, got %q", stdout)
	}
}

func TestE2EInteractivePipe(t *testing.T) {
	input := append(append([]string{}, sampleInput...), "exit", "CREATE ignored")
	session := NewSession().WithStdin(strings.Join(input, "\n") + "\n").Build(t)
	stdout, stderr, err := session.Run(t)
	if err != nil {
		t.Fatalf("run failed: %v\nstderr: %s", err, stderr)
	}

	expected := strings.Join(sampleOutput, "\n") + "\n"
	if stdout != expected {
		t.Fatalf("output mismatch:\nexpected: %q\ngot:      %q", expected, stdout)
	}
}

func TestE2EInteractiveCustomSentinel(t *testing.T) {
	session := NewSession().
		WithStdin("CREATE a\nEXIT\nquit\nLIST\n").
		WithEnv("DIRTREE_SENTINEL=QUIT").
		Build(t)
	stdout, stderr, err := session.Run(t)
	if err != nil {
		t.Fatalf("run failed: %v\nstderr: %s", err, stderr)
	}

	expected := "CREATE a\nEXIT\nUnknown command EXIT\n"
	if stdout != expected {
		t.Fatalf("output mismatch:\nexpected: %q\ngot:      %q", expected, stdout)
	}
}

// SessionBuilder describes one run of the binary
type SessionBuilder struct {
	commands []string
	hasFile  bool
	args     []string
	stdin    string
	env      []string
}

func NewSession() *SessionBuilder {
	return &SessionBuilder{}
}

// WithCommandFile writes lines to a temp file passed as the only argument
func (b *SessionBuilder) WithCommandFile(lines ...string) *SessionBuilder {
	b.commands = lines
	b.hasFile = true
	return b
}

func (b *SessionBuilder) WithArgs(args ...string) *SessionBuilder {
	b.args = append(b.args, args...)
	return b
}

func (b *SessionBuilder) WithStdin(stdin string) *SessionBuilder {
	b.stdin = stdin
	return b
}

func (b *SessionBuilder) WithEnv(env ...string) *SessionBuilder {
	b.env = append(b.env, env...)
	return b
}

func (b *SessionBuilder) Build(t *testing.T) *Session {
	t.Helper()
	args := append([]string{}, b.args...)
	if b.hasFile {
		path := filepath.Join(t.TempDir(), "commands.txt")
		data := strings.Join(b.commands, "\n") + "\n"
		if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
			t.Fatalf("failed to write command file: %v", err)
		}
		args = append(args, path)
	}
	return &Session{
		args:  args,
		stdin: b.stdin,
		// Keep history out of the user's temp dir
		env: append(b.env, "DIRTREE_HISTORY="+filepath.Join(t.TempDir(), "history")),
	}
}

// Session is a ready to run invocation of the binary
type Session struct {
	args  []string
	stdin string
	env   []string
}

// Run executes the binary and returns its stdout, stderr and exit error
func (s *Session) Run(t *testing.T) (stdout, stderr string, err error) {
	t.Helper()
	cmd := exec.Command(dirtreeBin, s.args...)
	cmd.Env = append(os.Environ(), s.env...)
	cmd.Stdin = strings.NewReader(s.stdin)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	done := make(chan error, 1)
	if err := cmd.Start(); err != nil {
		t.Fatalf("failed to start binary: %v", err)
	}
	go func() { done <- cmd.Wait() }()

	select {
	case err = <-done:
	case <-time.After(10 * time.Second):
		_ = cmd.Process.Kill()
		t.Fatalf("binary did not exit\nstdout: %s\nstderr: %s", outBuf.String(), errBuf.String())
	}
	return outBuf.String(), errBuf.String(), err
}
