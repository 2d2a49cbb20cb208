// Package server exposes the game over SSH, one independent session per
// connection.
package server

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"sync/atomic"
	"unicode/utf8"

	"github.com/gliderlabs/ssh"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/fogcrawl/internal/game"
	"github.com/samdwyer/fogcrawl/internal/gamedata"
	"github.com/samdwyer/fogcrawl/internal/telemetry"
	"github.com/samdwyer/fogcrawl/internal/ui"
)

// SSHServer wraps the SSH listener. Every connection gets its own map and
// fog of war; nothing is shared between players.
type SSHServer struct {
	cfg   game.Config
	theme ui.Theme
	conns atomic.Int64
}

// NewSSHServer creates a server that builds sessions from cfg.
func NewSSHServer(cfg game.Config) (*SSHServer, error) {
	palette, err := gamedata.LoadPalette()
	if err != nil {
		return nil, err
	}
	return &SSHServer{cfg: cfg, theme: ui.NewTheme(palette)}, nil
}

// Start begins listening for SSH connections. It blocks until the listener
// fails.
func (s *SSHServer) Start(ctx context.Context) error {
	if err := EnsureHostKey(s.cfg.SSHHostKey); err != nil {
		return fmt.Errorf("host key: %w", err)
	}

	server := &ssh.Server{
		Addr: s.cfg.SSHAddr,
		Handler: func(sess ssh.Session) {
			s.handleSession(ctx, sess)
		},
	}
	if err := server.SetOption(ssh.HostKeyFile(s.cfg.SSHHostKey)); err != nil {
		return fmt.Errorf("set host key: %w", err)
	}

	log.Printf("SSH server listening on %s", s.cfg.SSHAddr)
	return server.ListenAndServe()
}

// sessionConfig derives the per-connection config. Connection n plays
// seed base+n, so a fixed base seed makes every connection reproducible.
func (s *SSHServer) sessionConfig() game.Config {
	n := s.conns.Add(1)
	cfg := s.cfg
	if cfg.Seed != 0 {
		cfg.Seed += n
	}
	return cfg
}

func (s *SSHServer) handleSession(ctx context.Context, sess ssh.Session) {
	ptyReq, winCh, ok := sess.Pty()
	if !ok {
		fmt.Fprintln(sess, "Error: PTY required. Use: ssh -t ...")
		return
	}

	tracer := telemetry.Tracer("server")
	ctx, span := tracer.Start(ctx, "ssh.session")
	defer span.End()

	session, err := game.NewSession(ctx, s.sessionConfig())
	if err != nil {
		span.RecordError(err)
		fmt.Fprintf(sess, "Error: %v\n", err)
		return
	}
	span.SetAttributes(
		attribute.String("ssh.user", sess.User()),
		attribute.Int64("session.seed", session.Seed()),
	)

	log.Printf("Player connected: %s (%s)", sess.User(), session.Summary())
	defer log.Printf("Player disconnected: %s", sess.User())

	termW := ptyReq.Window.Width
	termH := ptyReq.Window.Height
	var termMu sync.Mutex

	io.WriteString(sess, ui.EnableAltScreen())
	io.WriteString(sess, ui.HideCursor())
	io.WriteString(sess, ui.ClearScreen())
	defer func() {
		io.WriteString(sess, ui.ShowCursor())
		io.WriteString(sess, ui.DisableAltScreen())
	}()

	inputCh := make(chan []game.Action)
	quitCh := make(chan struct{})
	redrawCh := make(chan struct{}, 1)

	go func() {
		buf := make([]byte, 64)
		for {
			n, err := sess.Read(buf)
			if err != nil {
				close(quitCh)
				return
			}
			select {
			case inputCh <- parseInput(buf[:n]):
			case <-sess.Context().Done():
				return
			}
		}
	}()

	go func() {
		for win := range winCh {
			termMu.Lock()
			termW = win.Width
			termH = win.Height
			termMu.Unlock()
			select {
			case redrawCh <- struct{}{}:
			default:
			}
		}
	}()

	draw := func(msg string) {
		termMu.Lock()
		w, h := termW, termH
		termMu.Unlock()
		io.WriteString(sess, s.theme.ComposeFrame(session.Frame(msg), w, h))
	}

	message := ""
	draw(message)
	for {
		select {
		case <-quitCh:
			return
		case <-sess.Context().Done():
			return
		case <-redrawCh:
			io.WriteString(sess, ui.ClearScreen())
			draw(message)
		case actions := <-inputCh:
			for _, action := range actions {
				var running bool
				running, message = session.Apply(ctx, action)
				if !running {
					return
				}
			}
			draw(message)
		}
	}
}

// parseInput converts raw bytes into actions. It handles arrow key escape
// sequences, the single-key commands, a bare Esc and Ctrl-C.
func parseInput(data []byte) []game.Action {
	var actions []game.Action
	i := 0
	for i < len(data) {
		if data[i] == 0x1b {
			if i+2 < len(data) && data[i+1] == '[' {
				switch data[i+2] {
				case 'A':
					actions = append(actions, game.Move(game.DirUp))
				case 'B':
					actions = append(actions, game.Move(game.DirDown))
				case 'C':
					actions = append(actions, game.Move(game.DirRight))
				case 'D':
					actions = append(actions, game.Move(game.DirLeft))
				}
				i += 3
				continue
			}
			if i == len(data)-1 {
				actions = append(actions, game.Action{Kind: game.ActionQuit})
			}
			i++
			continue
		}

		r, size := utf8.DecodeRune(data[i:])
		if r == 3 { // Ctrl-C
			actions = append(actions, game.Action{Kind: game.ActionQuit})
		} else if a := game.RuneAction(r); a.Kind != game.ActionNone {
			actions = append(actions, a)
		}
		i += size
	}
	return actions
}

// EnsureHostKey writes a new ed25519 host key to path unless one exists.
func EnsureHostKey(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	log.Println("Generating new host key...")
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return err
	}

	keyBytes, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	return pem.Encode(f, &pem.Block{Type: "PRIVATE KEY", Bytes: keyBytes})
}
