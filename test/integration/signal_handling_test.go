package integration

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"
)

func TestInterruptCancelsRequest(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	bin := filepath.Join(t.TempDir(), "mmaictl")
	buildCmd := exec.Command("go", "build", "-o", bin, ".")
	buildCmd.Dir = "../../"
	if out, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build mmaictl: %v\n%s", err, out)
	}

	t.Run("SIGTERM handling", func(t *testing.T) {
		testSignalHandling(t, bin, syscall.SIGTERM)
	})

	t.Run("SIGINT handling", func(t *testing.T) {
		testSignalHandling(t, bin, syscall.SIGINT)
	})
}

// testSignalHandling starts a command against an API that never answers and
// checks the signal aborts it with exit status 1.
func testSignalHandling(t *testing.T, bin string, signal syscall.Signal) {
	received := make(chan struct{}, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		received <- struct{}{}
		<-r.Context().Done()
	}))
	defer srv.Close()

	var stderr bytes.Buffer
	cmd := exec.Command(bin, "--api-url", srv.URL, "cluster", "list")
	cmd.Env = append(os.Environ(), "HOME="+t.TempDir(), "INSTRUMENTATION_ENABLED=false")
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		t.Fatalf("Failed to start mmaictl: %v", err)
	}

	select {
	case <-received:
	case <-time.After(5 * time.Second):
		_ = cmd.Process.Kill()
		t.Fatal("mmaictl never reached the API")
	}

	if err := cmd.Process.Signal(signal); err != nil {
		t.Fatalf("Failed to send %s signal: %v", signal, err)
	}

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	select {
	case err := <-done:
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("expected a non-zero exit, got %v", err)
		}
		if code := exitErr.ExitCode(); code != 1 {
			t.Fatalf("expected exit status 1, got %d (stderr: %s)", code, stderr.String())
		}
		if !strings.Contains(stderr.String(), "context canceled") {
			t.Errorf("expected a cancellation error, got %q", stderr.String())
		}
	case <-time.After(5 * time.Second):
		if err := cmd.Process.Kill(); err != nil {
			t.Logf("Failed to force kill process: %v", err)
		}
		t.Fatalf("mmaictl did not exit within 5 seconds after %s signal", signal)
	}
}
