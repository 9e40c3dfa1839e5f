package linkage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/c360studio/semstreams/message"
	"github.com/c360studio/semstreams/natsclient"

	"github.com/goldenagents/saagraph/graph"
	"github.com/goldenagents/saagraph/vocabulary/saa"
)

// publishSource identifies the linkage engine in ingested triples.
const publishSource = "saagraph.linkage"

// PublishLinkset sends every accepted link to the knowledge-graph ingest
// stream as a symmetric statement pair, one message per linked inventory.
// The similarity score travels as the triple confidence. A nil client skips
// publishing.
func PublishLinkset(ctx context.Context, nc *natsclient.Client, ls *Linkset) error {
	if nc == nil {
		return nil
	}

	now := time.Now()
	for _, inventory := range ls.Inventories() {
		subject := fmt.Sprintf("saa.%s.%s", saa.EntityTypeInventory, inventory)

		links := ls.Links(inventory)
		triples := make([]message.Triple, 0, 2*len(links))
		for _, link := range links {
			triples = append(triples,
				message.Triple{
					Subject:    subject,
					Predicate:  saa.InventoryIsInRecord,
					Object:     link.Record,
					Source:     publishSource,
					Timestamp:  now,
					Confidence: link.Score,
				},
				message.Triple{
					Subject:    link.Record,
					Predicate:  saa.InventoryRecord,
					Object:     subject,
					Source:     publishSource,
					Timestamp:  now,
					Confidence: link.Score,
				})
		}

		msg := graph.EntityIngestMessage{
			ID:        subject,
			Triples:   triples,
			UpdatedAt: now,
		}
		data, err := json.Marshal(msg)
		if err != nil {
			return fmt.Errorf("marshal linkset for %s: %w", inventory, err)
		}
		if err := nc.PublishToStream(ctx, graph.GraphIngestSubject, data); err != nil {
			return fmt.Errorf("publish linkset for %s: %w", inventory, err)
		}
	}
	return nil
}
