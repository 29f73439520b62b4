// Command xym-sign-sim drives a simulated XYM signing device over a
// JSON request/response protocol on stdin/stdout: each line in is one
// Request, each line out is the matching Response. It exists to exercise
// apdu.Dispatcher end to end against recorded APDU fixtures without real
// transport hardware.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"xymsign/node"
)

func writeResp(w io.Writer, resp Response) {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(resp)
}

func main() {
	network := flag.String("network", "", "override the configured network (mainnet|testnet)")
	dataDir := flag.String("data-dir", "", "override the configured data directory")
	logLevel := flag.String("log-level", "", "override the configured log level")
	flag.Parse()

	cfg := node.DefaultConfig()
	if *network != "" {
		cfg.Network = *network
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
		cfg.TracePath = *dataDir + "/sessions.bolt"
		cfg.KeystorePath = *dataDir + "/keystore.json"
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := node.ValidateConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "xym-sign-sim: invalid config: %v\n", err)
		os.Exit(1)
	}

	log := node.NewLogger(cfg, os.Stderr)

	rt, err := NewRuntime(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "xym-sign-sim: %v\n", err)
		os.Exit(1)
	}
	defer rt.Close()

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			writeResp(os.Stdout, Response{Ok: false, Err: fmt.Sprintf("bad request: %v", err)})
			continue
		}
		writeResp(os.Stdout, rt.Handle(req))
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "xym-sign-sim: read stdin: %v\n", err)
		os.Exit(1)
	}
}
