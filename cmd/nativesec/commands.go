package main

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/saylorsolutions/nativesec/cmd/internal"
	"github.com/saylorsolutions/nativesec/internal/config"
	"github.com/saylorsolutions/nativesec/pkg/bridge"
	"github.com/saylorsolutions/nativesec/pkg/devtrust"
	"github.com/saylorsolutions/nativesec/pkg/gatekeeper"
	"github.com/saylorsolutions/nativesec/pkg/passlock"
	"github.com/saylorsolutions/nativesec/pkg/token"
	"github.com/saylorsolutions/nativesec/pkg/traffic"
	"github.com/saylorsolutions/nativesec/pkg/xor"
)

var errRefused = errors.New("one or more URLs were refused")

func run(args []string, stdin io.Reader) error {
	var opts options
	flags := newFlags(&opts)
	if len(args) == 0 {
		flags.Usage()
		return nil
	}
	if err := flags.Parse(args); err != nil {
		flags.Usage()
		return fmt.Errorf("failed to parse flags: %w", err)
	}
	if opts.help || flags.NArg() == 0 {
		flags.Usage()
		return nil
	}

	cfg, err := config.Load(flags)
	if err != nil {
		return err
	}
	if err := setupLogging(cfg); err != nil {
		return err
	}
	b, err := newBridge(cfg)
	if err != nil {
		return err
	}

	cmdArgs := flags.Args()[1:]
	switch cmd := flags.Arg(0); cmd {
	case "encrypt":
		return transform(stdin, false, opts.base64, b.Encrypt)
	case "decrypt":
		return transform(stdin, opts.base64, false, b.Decrypt)
	case "token":
		internal.Print(b.GenerateSecurityToken())
	case "device":
		internal.Print("secure: %t", b.IsDeviceSecure())
	case "validate":
		if len(cmdArgs) == 0 {
			return errors.New("missing required URL argument")
		}
		refused := false
		for _, u := range cmdArgs {
			ok := b.ValidateConnection(&u)
			refused = refused || !ok
			internal.Print("%s: %t", u, ok)
		}
		if refused {
			return errRefused
		}
	case "probe":
		if len(cmdArgs) != 1 {
			return errors.New("expected exactly one URL argument")
		}
		return probe(b, cfg, cmdArgs[0])
	case "obfuscate":
		switch len(cmdArgs) {
		case 0:
			return copyStream(gatekeeper.NewEndpointWriter(internal.Stdout), stdin)
		case 1:
			internal.Print(hex.EncodeToString([]byte(*b.ObfuscateEndpoint(&cmdArgs[0]))))
		default:
			return errors.New("expected at most one TEXT argument")
		}
	case "reveal":
		switch len(cmdArgs) {
		case 0:
			return copyStream(internal.Stdout, gatekeeper.NewEndpointReader(stdin))
		case 1:
		default:
			return errors.New("expected at most one HEX argument")
		}
		data, err := hex.DecodeString(cmdArgs[0])
		if err != nil {
			return fmt.Errorf("failed to decode HEX: %w", err)
		}
		text := string(data)
		internal.Print(*b.ObfuscateEndpoint(&text))
	case "genkey":
		return genKey(opts.scrambleN)
	case "seal", "open":
		if len(cmdArgs) != 1 {
			return errors.New("expected exactly one KEY argument")
		}
		key, err := hex.DecodeString(cmdArgs[0])
		if err != nil {
			return fmt.Errorf("failed to decode KEY, must be a hex string: %w", err)
		}
		if cmd == "seal" {
			return transformErr(stdin, func(data []byte) ([]byte, error) { return passlock.Seal(key, data) })
		}
		return transformErr(stdin, func(data []byte) ([]byte, error) { return passlock.Open(key, data) })
	case "lock", "unlock":
		if len(cmdArgs) != 1 {
			return errors.New("expected exactly one PASSPHRASE argument")
		}
		pass := passlock.Passphrase(cmdArgs[0])
		if cmd == "unlock" {
			return transformErr(stdin, func(data []byte) ([]byte, error) { return passlock.UnlockWithPassphrase(pass, data) })
		}
		gen, err := passlock.NewKeyGenerator(lockOpts(opts)...)
		if err != nil {
			return err
		}
		return transformErr(stdin, func(data []byte) ([]byte, error) { return gen.LockWithPassphrase(pass, data) })
	case "hash":
		if len(cmdArgs) != 2 {
			return errors.New("expected PASSWORD and SALT arguments")
		}
		salt, err := hex.DecodeString(cmdArgs[1])
		if err != nil {
			return fmt.Errorf("failed to decode SALT, must be a hex string: %w", err)
		}
		internal.Print(hex.EncodeToString(passlock.HashPassword(cmdArgs[0], salt)))
	case "wrap":
		return transformErr(stdin, traffic.Obfuscate)
	case "unwrap":
		return transformErr(stdin, traffic.Deobfuscate)
	default:
		flags.Usage()
		return fmt.Errorf("unknown command '%s'", cmd)
	}
	return nil
}

func newBridge(cfg *config.Config) (*bridge.Bridge, error) {
	var opts []bridge.Opt
	if len(cfg.ScrambleKey) > 0 {
		opts = append(opts, bridge.WithScrambleKey([]byte(cfg.ScrambleKey)))
	}
	if len(cfg.TrustedHosts) > 0 {
		opts = append(opts, bridge.WithTrustedHosts(cfg.TrustedHosts...))
	}
	if len(cfg.PropFile) > 0 {
		props, err := devtrust.LoadPropertyFile(cfg.PropFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, bridge.WithPropertySource(props))
	}
	opts = append(opts, bridge.WithTokenGenerator(token.Generator{Prefix: cfg.TokenPrefix}))
	return bridge.New(opts...)
}

func probe(b *bridge.Bridge, cfg *config.Config, target string) error {
	client := &http.Client{
		Transport: b.Gatekeeper().Guard(nil,
			gatekeeper.WithToken(b.GenerateSecurityToken),
			gatekeeper.WithAppVersion(cfg.AppVersion),
		),
	}
	resp, err := client.Get(target)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	internal.Print("%s: %s", target, resp.Status)
	return nil
}

func lockOpts(opts options) []passlock.GeneratorOpt {
	genOpts := []passlock.GeneratorOpt{passlock.SetShortDelayIterations()}
	if opts.longDelay {
		genOpts = append(genOpts, passlock.SetLongDelayIterations())
	}
	if opts.iterations > 0 {
		genOpts = append(genOpts, passlock.SetIterations(opts.iterations))
	}
	if opts.cpuCost > 0 {
		genOpts = append(genOpts, passlock.SetCPUCost(opts.cpuCost))
	}
	if opts.blockSize > 0 {
		genOpts = append(genOpts, passlock.SetRelativeBlockSize(opts.blockSize))
	}
	if opts.aes128 {
		genOpts = append(genOpts, passlock.SetAES128KeySize())
	} else {
		genOpts = append(genOpts, passlock.SetAES256KeySize())
	}
	return genOpts
}

func genKey(scrambleLen int) error {
	var (
		key []byte
		err error
	)
	if scrambleLen > 0 {
		key, err = xor.GenKey(scrambleLen)
	} else {
		key, err = passlock.GenerateRandomKey()
	}
	if err != nil {
		return err
	}
	internal.Print(hex.EncodeToString(key))
	return nil
}

func transform(stdin io.Reader, decodeIn, encodeOut bool, fn func([]byte) []byte) error {
	return transformErr(stdin, func(data []byte) ([]byte, error) {
		if decodeIn {
			decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(data)))
			if err != nil {
				return nil, fmt.Errorf("failed to decode base64 input: %w", err)
			}
			data = decoded
		}
		out := fn(data)
		if encodeOut {
			return []byte(base64.StdEncoding.EncodeToString(out) + "\n"), nil
		}
		return out, nil
	})
}

func copyStream(dst io.Writer, src io.Reader) error {
	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to copy input: %w", err)
	}
	return nil
}

func transformErr(stdin io.Reader, fn func([]byte) ([]byte, error)) error {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, stdin); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	out, err := fn(buf.Bytes())
	if err != nil {
		return err
	}
	_, err = internal.Stdout.Write(out)
	return err
}
