package config

import (
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/postmeapp/postme/internal/flagx"
)

// parseFlags populates selected client Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   backend URL
//	-k string   backend access key
//	-f string   local SQLite database path
//	-w value    mirror writes into the local store when the backend is on;
//	            takes an explicit true/false ("-w false" or "-w=false")
//	-r int      backend request timeout, seconds
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-k", "-f", "-w", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.BackendURL, "a", config.BackendURL, "backend URL")
	fs.StringVar(&config.BackendKey, "k", config.BackendKey, "backend access key")
	fs.StringVar(&config.LocalDBPath, "f", config.LocalDBPath, "local database file path")

	// a value-taking flag, not a plain bool: "-w false" as separate
	// arguments must work the same as "-w=false"
	fs.Func("w", "mirror writes locally when backend is configured (true/false)", func(v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		config.DualWrite = b
		return nil
	})

	requestTimeout := fs.Int("r", int(config.RequestTimeout.Seconds()), "backend request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
