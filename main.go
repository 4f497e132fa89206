package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"fileserver/config"
	"fileserver/docroot"
	"fileserver/logging"
)

func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] <port>\n\nServes files from the working directory on 127.0.0.1:<port>.\n\nOptions:\n", os.Args[0])
	flag.PrintDefaults()
}

func fatal(format string, v ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", v...)
	os.Exit(1)
}

func serverMain(cfg *config.Config) error {
	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Close()

	root, err := docroot.New(cfg.Root)
	if err != nil {
		return fmt.Errorf("serving root: %w", err)
	}
	ln, err := net.Listen("tcp", cfg.Address())
	if err != nil {
		return err
	}
	log.Info("serving %s at http://%s", root.Dir(), ln.Addr())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return NewServer(cfg, root, log).Serve(ctx, ln)
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	port, err := strconv.Atoi(flag.Arg(0))
	if err != nil {
		fatal("invalid port %q", flag.Arg(0))
	}

	cfg := Must(config.Load(*configPath))
	cfg.Port = port
	if err := cfg.Validate(); err != nil {
		fatal("invalid configuration: %v", err)
	}

	if err := serverMain(cfg); err != nil {
		fatal("an error occurred: %v", err)
	}
}
