package main

import (
	"encoding/hex"
	"fmt"

	"github.com/rs/zerolog"

	"xymsign/apdu"
	"xymsign/crypto"
	"xymsign/node"
)

// Request is one line of simulator input: a single raw APDU to feed to the
// device, or (with Op "recent_traces") a query of the trace store.
type Request struct {
	Op      string `json:"op"`
	ApduHex string `json:"apdu_hex,omitempty"`
	Limit   int    `json:"limit,omitempty"`
}

// Response mirrors Request: exactly one of the result fields is populated
// depending on Op.
type Response struct {
	Ok         bool         `json:"ok"`
	Err        string       `json:"err,omitempty"`
	ApduHex    string       `json:"apdu_hex,omitempty"`
	StatusWord uint16       `json:"status_word,omitempty"`
	Traces     []node.Trace `json:"traces,omitempty"`
}

// Runtime wires a Dispatcher to a dev crypto provider and a trace store,
// the way a real device wires flash-backed state to its command loop.
type Runtime struct {
	dispatcher *apdu.Dispatcher
	traces     *node.TraceStore
	cfg        node.Config
	log        zerolog.Logger
}

func NewRuntime(cfg node.Config, log zerolog.Logger) (*Runtime, error) {
	traces, err := node.OpenTraceStore(cfg.TracePath)
	if err != nil {
		return nil, fmt.Errorf("open trace store: %w", err)
	}
	seed, err := loadOrCreateSeed(cfg.KeystorePath, log)
	if err != nil {
		traces.Close()
		return nil, fmt.Errorf("load keystore: %w", err)
	}
	provider := crypto.DevStdCryptoProvider{Seed: seed}
	return &Runtime{
		dispatcher: apdu.NewDispatcher(provider),
		traces:     traces,
		cfg:        cfg,
		log:        log,
	}, nil
}

func (r *Runtime) Close() error { return r.traces.Close() }

// Handle processes one Request and returns the Response to write back.
func (r *Runtime) Handle(req Request) Response {
	switch req.Op {
	case "", "apdu":
		return r.handleApdu(req)
	case "recent_traces":
		limit := req.Limit
		if limit <= 0 {
			limit = 20
		}
		traces, err := r.traces.Recent(limit)
		if err != nil {
			return Response{Ok: false, Err: err.Error()}
		}
		return Response{Ok: true, Traces: traces}
	default:
		return Response{Ok: false, Err: fmt.Sprintf("unknown op %q", req.Op)}
	}
}

func (r *Runtime) handleApdu(req Request) Response {
	raw, err := hex.DecodeString(req.ApduHex)
	if err != nil {
		return Response{Ok: false, Err: "bad apdu hex"}
	}

	resp := r.dispatcher.Handle(raw)
	if len(resp) < 2 {
		return Response{Ok: false, Err: "dispatcher returned malformed response"}
	}
	sw := uint16(resp[len(resp)-2])<<8 | uint16(resp[len(resp)-1])

	r.log.Debug().Hex("apdu", raw).Uint16("sw", sw).Msg("handled apdu")

	if summary, ok := r.dispatcher.TakeLastSigned(); ok {
		r.recordTrace(summary, sw)
	}

	return Response{Ok: true, ApduHex: hex.EncodeToString(resp), StatusWord: sw}
}

func (r *Runtime) recordTrace(summary apdu.SignedSummary, sw uint16) {
	t := node.Trace{
		Network:    r.cfg.Network,
		BIP32Path:  summary.BIP32Path,
		StatusWord: sw,
		Fields:     summary.Lines,
	}
	if _, err := r.traces.Append(t); err != nil {
		r.log.Warn().Err(err).Msg("failed to record signing trace")
	}
}
