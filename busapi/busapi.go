// file: radixmap/busapi/busapi.go
package busapi

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nuid"

	"github.com/maatini/radixmap/httpapi"
)

// LookupSubject is the NATS subject the responder listens on.
const LookupSubject = "radixmap.lookup"

type lookupRequest struct {
	Key string `json:"key"`
}

type lookupResponse struct {
	Value string `json:"value"`
	Found bool   `json:"found"`
}

// Responder answers radixmap.lookup requests over a NATS connection.
type Responder struct {
	id   string
	nc   *nats.Conn
	sub  *nats.Subscription
	data httpapi.Lookuper
}

// NewResponder wraps an existing NATS connection; it does not own nc's
// lifecycle — the caller closes it.
func NewResponder(nc *nats.Conn, data httpapi.Lookuper) *Responder {
	return &Responder{id: nuid.Next(), nc: nc, data: data}
}

// ID returns the unique responder instance id, useful for distinguishing
// which of several load-balanced responders served a request.
func (r *Responder) ID() string { return r.id }

// Start subscribes on LookupSubject as a member of the "radixmap" queue
// group, so multiple Responders sharing one subject load-balance requests.
func (r *Responder) Start() error {
	sub, err := r.nc.QueueSubscribe(LookupSubject, "radixmap", r.handle)
	if err != nil {
		return fmt.Errorf("busapi: subscribe: %w", err)
	}
	r.sub = sub
	return nil
}

// Stop unsubscribes the responder.
func (r *Responder) Stop() error {
	if r.sub == nil {
		return nil
	}
	return r.sub.Unsubscribe()
}

func (r *Responder) handle(msg *nats.Msg) {
	var req lookupRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		_ = msg.Respond(nil)
		return
	}

	value, found := r.data.LookupString(req.Key)
	reply, err := json.Marshal(lookupResponse{Value: value, Found: found})
	if err != nil {
		_ = msg.Respond(nil)
		return
	}
	_ = msg.Respond(reply)
}

// Lookup issues a request/reply lookup against a radixmap responder on nc.
func Lookup(nc *nats.Conn, key string) (string, bool, error) {
	req, err := json.Marshal(lookupRequest{Key: key})
	if err != nil {
		return "", false, err
	}

	msg, err := nc.Request(LookupSubject, req, nats.DefaultTimeout)
	if err != nil {
		return "", false, fmt.Errorf("busapi: request: %w", err)
	}

	var resp lookupResponse
	if err := json.Unmarshal(msg.Data, &resp); err != nil {
		return "", false, fmt.Errorf("busapi: decode reply: %w", err)
	}
	return resp.Value, resp.Found, nil
}
