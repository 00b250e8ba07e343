package main

import (
	"fmt"
	"os"

	"github.com/saylorsolutions/nativesec/cmd/internal"
	"github.com/saylorsolutions/nativesec/internal/config"
	"github.com/saylorsolutions/nativesec/internal/logging"
	flag "github.com/spf13/pflag"
)

var version = "dev"

type options struct {
	help       bool
	base64     bool
	scrambleN  int
	iterations uint64
	cpuCost    uint8
	blockSize  uint8
	aes128     bool
	longDelay  bool
}

func main() {
	if err := run(os.Args[1:], os.Stdin); err != nil {
		internal.Fatal("Error: %v", err)
	}
}

func newFlags(opts *options) *flag.FlagSet {
	flags := flag.NewFlagSet("nativesec", flag.ContinueOnError)
	flags.BoolVarP(&opts.help, "help", "h", false, "Prints this usage information.")
	flags.BoolVarP(&opts.base64, "base64", "b", false, "encrypt/decrypt: use base64 text instead of raw bytes.")
	flags.IntVar(&opts.scrambleN, "scramble", 0, "genkey: generate a scramble key of this many bytes instead of an AES key.")
	flags.Uint64Var(&opts.iterations, "iterations", 0, "lock: scrypt iterations, a power of 2. Defaults to the interactive setting.")
	flags.BoolVar(&opts.longDelay, "long-delay", false, "lock: use the slower, stronger iteration setting.")
	flags.Uint8Var(&opts.cpuCost, "cpu-cost", 0, "lock: scrypt parallelism factor.")
	flags.Uint8Var(&opts.blockSize, "block-size", 0, "lock: scrypt relative block size.")
	flags.BoolVar(&opts.aes128, "aes128", false, "lock: derive an AES-128 key instead of AES-256.")
	config.RegisterFlags(flags)
	flags.Usage = func() {
		_, _ = fmt.Fprintf(internal.Stderr, `
nativesec %s drives the app's native security helpers from the command line.

USAGE:  nativesec [FLAGS] COMMAND [ARGS]

COMMANDS:
    encrypt              Scramble stdin to stdout.
    decrypt              Unscramble stdin to stdout.
    token                Print a security token.
    device               Report whether the device properties look secure.
    validate URL...      Check URLs against the trusted host list. Exits 1 if any are refused.
    probe URL            Send a guarded GET request and print the response status.
    obfuscate [TEXT]     Print the endpoint obfuscation of TEXT as hex, or obfuscate stdin to stdout.
    reveal [HEX]         Reverse obfuscate.
    genkey               Print a random AES-256 key as hex.
    seal KEY             AES-GCM encrypt stdin to stdout with a hex KEY.
    open KEY             Reverse seal.
    lock PASSPHRASE      Encrypt stdin to stdout with a key derived from PASSPHRASE.
    unlock PASSPHRASE    Reverse lock.
    hash PASSWORD SALT   Print the iterated SHA-256 hash of PASSWORD with a hex SALT.
    wrap                 Frame and screen stdin to stdout.
    unwrap               Reverse wrap.

FLAGS:
%s
SECURITY:
    encrypt, decrypt, obfuscate, and wrap are obfuscation, not encryption. Anyone with this binary can reverse them.
    device is a heuristic that a rooted device can trivially fool.
    token values are predictable timestamps, not credentials.
`, version, flags.FlagUsages())
	}
	return flags
}

func setupLogging(cfg *config.Config) error {
	if err := logging.SetLevel(cfg.LogLevel); err != nil {
		return err
	}
	if len(cfg.LogDir) > 0 {
		return logging.SetFileRotationHooker(cfg.LogDir, cfg.LogRotation)
	}
	return nil
}
