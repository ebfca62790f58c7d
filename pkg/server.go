//go:build !windows

package pkg

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path"
	"time"

	"github.com/creack/pty"
	"github.com/gliderlabs/ssh"
	gossh "golang.org/x/crypto/ssh"
)

const (
	ServerIdleTimeout = 5 * time.Minute
	SshPort           = ":2222"
)

// Server hosts a game over SSH. Every session runs its own game binary in a
// pseudo-terminal; no game state is shared between sessions.
type Server struct {
	*ssh.Server

	// Binary is the game executable started for each session.
	Binary string
}

// DefaultHostKey returns ~/.ssh/id_rsa.
func DefaultHostKey() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return path.Join(homeDir, ".ssh", "id_rsa"), nil
}

func NewServer(addr, binary, hostKey string) (*Server, error) {
	if binary == "" {
		return nil, errors.New("server: game binary must be specified")
	}

	s := &Server{Binary: binary}
	s.Server = &ssh.Server{
		Addr:        addr,
		IdleTimeout: ServerIdleTimeout,
		Handler:     s.handle,
		PublicKeyHandler: func(ctx ssh.Context, key ssh.PublicKey) bool {
			return true
		},
		PasswordHandler: func(ctx ssh.Context, password string) bool {
			return true
		},
		KeyboardInteractiveHandler: func(ctx ssh.Context, challenger gossh.KeyboardInteractiveChallenge) bool {
			return true
		},
	}

	if hostKey != "" {
		if err := s.SetOption(ssh.HostKeyFile(hostKey)); err != nil {
			return nil, fmt.Errorf("server: load host key: %w", err)
		}
	}

	return s, nil
}

// Command returns the game process for a session.
func (s *Server) Command(ctx context.Context, name string, ptyReq ssh.Pty) *exec.Cmd {
	cmd := exec.CommandContext(ctx, s.Binary, "--name", name, "--log", "")
	cmd.Env = append(os.Environ(), fmt.Sprintf("TERM=%s", ptyReq.Term))

	return cmd
}

func (s *Server) handle(sess ssh.Session) {
	ptyReq, winCh, isPty := sess.Pty()
	if !isPty {
		io.WriteString(sess, "non-interactive terminals are not supported\n")

		sess.Exit(1)
		return
	}

	name := SessionName()
	log.Printf("Session %s opened by %s from %s", name, sess.User(), sess.RemoteAddr())
	defer log.Printf("Session %s closed", name)

	cmdCtx, cancelCmd := context.WithCancel(sess.Context())
	defer cancelCmd()

	cmd := s.Command(cmdCtx, name, ptyReq)
	f, err := pty.StartWithSize(cmd, winsize(ptyReq.Window))
	if err != nil {
		log.Printf("Session %s: failed to start game: %s", name, err)
		io.WriteString(sess, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))
		sess.Exit(1)
		return
	}
	defer f.Close()

	go func() {
		for win := range winCh {
			if err := pty.Setsize(f, winsize(win)); err != nil {
				log.Printf("Session %s: resize: %s", name, err)
			}
		}
	}()

	go func() {
		io.Copy(f, sess)
	}()
	io.Copy(sess, f)

	cancelCmd()
	if err := cmd.Wait(); err != nil {
		log.Printf("Session %s: game exited: %s", name, err)
	}
}

func winsize(w ssh.Window) *pty.Winsize {
	return &pty.Winsize{Rows: uint16(w.Height), Cols: uint16(w.Width)}
}
