package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/capsule-admin/campaign-governance-service/pkg/livesync"
	"github.com/capsule-admin/campaign-governance-service/pkg/logger"
	"github.com/capsule-admin/campaign-governance-service/pkg/utils"
)

// StreamRules pushes full rule collection snapshots over server-sent
// events, one event per remote mutation.
func (h *Handler) StreamRules(w http.ResponseWriter, r *http.Request) {
	source, err := h.RuleSource()
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	streamSnapshots(h, w, r, source)
}

// StreamViolations pushes full violation collection snapshots over
// server-sent events.
func (h *Handler) StreamViolations(w http.ResponseWriter, r *http.Request) {
	source, err := h.ViolationSource()
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	streamSnapshots(h, w, r, source)
}

// streamSnapshots owns one subscription per mounted stream, torn down when
// the client disconnects or the identity changes underneath it (the stale
// path must not stay subscribed). A subscription error is reported once to
// the client and ends the stream without retry.
func streamSnapshots[T any](h *Handler, w http.ResponseWriter, r *http.Request, source livesync.Source[T]) {

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	boundUser := h.Session.UserID()
	unsubscribeIdentity := h.Session.OnIdentityChange(func(userId string) {
		if userId != boundUser {
			cancel()
		}
	})
	defer unsubscribeIdentity()

	snapshots := make(chan []T, 1)
	errs := make(chan error, 1)

	subscription := livesync.Subscribe(ctx, source,
		func(records []T) {
			// Keep only the latest pending snapshot; last one wins.
			select {
			case <-snapshots:
			default:
			}
			snapshots <- records
		},
		func(err error) {
			select {
			case errs <- err:
			default:
			}
		})
	defer subscription.Unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return
		case records := <-snapshots:
			payload, err := json.Marshal(records)
			if err != nil {
				logger.Error(err, "Failed to encode snapshot for streaming.")
				continue
			}
			fmt.Fprintf(w, "data: %s\n\n", payload)
			flusher.Flush()
		case err := <-errs:
			fmt.Fprintf(w, "event: error\ndata: %s\n\n", err.Error())
			flusher.Flush()
			return
		}
	}
}
