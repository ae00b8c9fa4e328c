package tui

import (
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/colorshift/internal/registry"
)

func init() {
	registry.Register("stub", func() registry.Game { return &stubGame{} })
}

func TestNewSSHServerUnknownGame(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.GameID = "missing"
	if _, err := NewSSHServer(cfg, quietLogger()); err == nil {
		t.Error("expected an error for an unregistered game")
	}
}

func TestListenAndServeReturnsListenError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen: %v", err)
	}
	defer busy.Close()

	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = busy.Addr().String()
	cfg.HostKeyPath = filepath.Join(dir, "host_key")
	cfg.DBPath = filepath.Join(dir, "journal.db")
	cfg.GameID = "stub"

	server, err := NewSSHServer(cfg, quietLogger())
	if err != nil {
		t.Fatalf("NewSSHServer: %v", err)
	}

	result := make(chan error, 1)
	go func() {
		result <- server.ListenAndServe()
	}()

	select {
	case err := <-result:
		if err == nil {
			t.Error("expected the listen error, got nil")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("ListenAndServe kept running with the port in use")
	}
}
