package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/sirupsen/logrus"
	cli "github.com/urfave/cli/v2"

	"github.com/smallyu/hash-storage-go/internal/server"
	"github.com/smallyu/hash-storage-go/pkg/hexcrypto"
)

func main() {
	if err := run(os.Args, os.Stdout); err != nil {
		var exit cli.ExitCoder
		if errors.As(err, &exit) {
			os.Exit(exit.ExitCode())
		}
		logrus.WithError(err).Error("exiting")
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {

	app := cli.App{
		Name:    "hashstorage",
		Usage:   "hex-string key derivation, encryption and signatures over secp256k1",
		Version: versioninfo.Short(),
		Writer:  stdout,
		// Exit codes are applied by main.
		ExitErrHandler: func(*cli.Context, error) {},
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log verbosity level (eg: warn, info, debug)",
			Value:   "info",
			EnvVars: []string{"HASHSTORAGE_LOG_LEVEL", "LOG_LEVEL"},
		},
	}
	app.Before = func(cctx *cli.Context) error {
		return configLogger(cctx)
	}

	app.Commands = []*cli.Command{
		&cli.Command{
			Name:      "private-key",
			Usage:     "derive a private key from a secret",
			ArgsUsage: "<secret>",
			Action:    textCmd(1, func(s *hexcrypto.Suite, a []string) (string, error) { return s.GetPrivateKey(a[0]) }),
		},
		&cli.Command{
			Name:      "public-key",
			Usage:     "print the public key of a private key",
			ArgsUsage: "<private-key>",
			Action:    textCmd(1, func(s *hexcrypto.Suite, a []string) (string, error) { return s.GetPublicKey(a[0]) }),
		},
		&cli.Command{
			Name:      "check-keys",
			Usage:     "check that a public key belongs to a private key",
			ArgsUsage: "<private-key> <public-key>",
			Action:    boolCmd(2, func(s *hexcrypto.Suite, a []string) (bool, error) { return s.CheckKeys(a[0], a[1]) }),
		},
		&cli.Command{
			Name:      "encrypt",
			Usage:     "encrypt a text body to a public key",
			ArgsUsage: "<public-key> <body>",
			Action:    textCmd(2, func(s *hexcrypto.Suite, a []string) (string, error) { return s.Encrypt(a[0], a[1]) }),
		},
		&cli.Command{
			Name:      "decrypt",
			Usage:     "decrypt an encrypted block",
			ArgsUsage: "<private-key> <block>",
			Action:    textCmd(2, func(s *hexcrypto.Suite, a []string) (string, error) { return s.Decrypt(a[0], a[1]) }),
		},
		&cli.Command{
			Name:      "sign",
			Usage:     "sign a data block under a key",
			ArgsUsage: "<private-key> <key> <block>",
			Action:    textCmd(3, func(s *hexcrypto.Suite, a []string) (string, error) { return s.BuildSignature(a[0], a[1], a[2]) }),
		},
		&cli.Command{
			Name:      "verify",
			Usage:     "verify a data block signature",
			ArgsUsage: "<public-key> <key> <block> <signature>",
			Action:    boolCmd(4, func(s *hexcrypto.Suite, a []string) (bool, error) { return s.CheckSignature(a[0], a[1], a[2], a[3]) }),
		},
		&cli.Command{
			Name:      "sign-secret",
			Usage:     "sign the bytes of a hex secret",
			ArgsUsage: "<private-key> <secret-hex>",
			Action:    textCmd(2, func(s *hexcrypto.Suite, a []string) (string, error) { return s.BuildSecretSignature(a[0], a[1]) }),
		},
		&cli.Command{
			Name:      "verify-secret",
			Usage:     "verify a secret signature",
			ArgsUsage: "<public-key> <secret-hex> <signature>",
			Action:    boolCmd(3, func(s *hexcrypto.Suite, a []string) (bool, error) { return s.CheckSecretSignature(a[0], a[1], a[2]) }),
		},
		&cli.Command{
			Name:   "serve",
			Usage:  "run the JSON API daemon",
			Action: runServe,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "bind",
					Usage:   "Specify the local IP/port to bind to",
					Value:   ":8790",
					EnvVars: []string{"HASHSTORAGE_BIND"},
				},
				&cli.StringFlag{
					Name:    "body-limit",
					Usage:   "maximum request body size (eg: 512K, 4M)",
					Value:   "1M",
					EnvVars: []string{"HASHSTORAGE_BODY_LIMIT"},
				},
				&cli.BoolFlag{
					Name:    "debug",
					Usage:   "Enable debug mode",
					EnvVars: []string{"HASHSTORAGE_DEBUG", "DEBUG"},
				},
			},
		},
		&cli.Command{
			Name:  "version",
			Usage: "print version and build details",
			Action: func(cctx *cli.Context) error {
				fmt.Fprintf(cctx.App.Writer, "version: %s\nrevision: %s\ndirty: %t\nlast commit: %s\n",
					versioninfo.Version, versioninfo.Revision, versioninfo.DirtyBuild, versioninfo.LastCommit)
				return nil
			},
		},
	}

	return app.Run(args)
}

func configLogger(cctx *cli.Context) error {
	level, err := logrus.ParseLevel(cctx.String("log-level"))
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return nil
}

func newSuite() (*hexcrypto.Suite, error) {
	return hexcrypto.NewSuite(hexcrypto.WithLogger(logrus.StandardLogger()))
}

func expectArgs(cctx *cli.Context, n int) ([]string, error) {
	if cctx.Args().Len() != n {
		return nil, fmt.Errorf("%s expects %d arguments: %s", cctx.Command.Name, n, cctx.Command.ArgsUsage)
	}
	return cctx.Args().Slice(), nil
}

func textCmd(n int, op func(*hexcrypto.Suite, []string) (string, error)) cli.ActionFunc {
	return func(cctx *cli.Context) error {
		args, err := expectArgs(cctx, n)
		if err != nil {
			return err
		}
		s, err := newSuite()
		if err != nil {
			return err
		}
		out, err := op(s, args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cctx.App.Writer, out)
		return nil
	}
}

// boolCmd prints the result and exits with status 1 when it is false.
func boolCmd(n int, op func(*hexcrypto.Suite, []string) (bool, error)) cli.ActionFunc {
	return func(cctx *cli.Context) error {
		args, err := expectArgs(cctx, n)
		if err != nil {
			return err
		}
		s, err := newSuite()
		if err != nil {
			return err
		}
		ok, err := op(s, args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cctx.App.Writer, ok)
		if !ok {
			return cli.Exit("", 1)
		}
		return nil
	}
}

func runServe(cctx *cli.Context) error {
	s, err := newSuite()
	if err != nil {
		return err
	}
	srv, err := server.New(server.Config{
		Logger:    logrus.StandardLogger(),
		Service:   s,
		Bind:      cctx.String("bind"),
		BodyLimit: cctx.String("body-limit"),
		Debug:     cctx.Bool("debug"),
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return srv.Run(ctx)
}
