//go:build !windows

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"github.com/gliderlabs/ssh"
	"github.com/qnkhuat/tetristerm/pkg"
)

const shutdownTimeout = 5 * time.Second

func main() {
	listen := flag.String("listen-ssh", pkg.SshPort, "address to accept SSH connections on")
	binary := flag.String("tetristerm", "tetristerm", "path to the tetristerm binary")
	hostKey := flag.String("host-key", "", "SSH host key, ~/.ssh/id_rsa when it exists, generated otherwise")
	logPath := flag.String("log", "./server.log", "path to log file, logs are discarded when empty")
	flag.Parse()

	if err := pkg.InitLog(*logPath, "SERVER: "); err != nil {
		log.Fatal(err)
	}

	gameBinary, err := exec.LookPath(*binary)
	if err != nil {
		log.Fatalf("failed to start server: %s", err)
	}

	if *hostKey == "" {
		if k, err := pkg.DefaultHostKey(); err == nil {
			if _, err := os.Stat(k); err == nil {
				*hostKey = k
			}
		}
	}

	s, err := pkg.NewServer(*listen, gameBinary, *hostKey)
	if err != nil {
		log.Fatalf("failed to start server: %s", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			log.Printf("Shutdown: %s", err)
		}
	}()

	log.Printf("Listening for SSH connections at %s", *listen)
	if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		log.Fatalf("Server stopped: %s", err)
	}
	log.Println("Server stopped")
}
