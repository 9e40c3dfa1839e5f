package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/c360studio/semstreams/message"
	"github.com/c360studio/semstreams/natsclient"

	"github.com/goldenagents/saagraph/vocabulary/saa"
)

// GraphIngestSubject is the stream subject for graph entity ingestion.
const GraphIngestSubject = "graph.ingest.entity"

// publishSource identifies this pipeline in ingested triples.
const publishSource = "saagraph.convert"

// EntityIngestMessage is the message format for graph ingestion, matching
// the format used by semstreams graph components.
type EntityIngestMessage struct {
	ID        string           `json:"id"`
	Triples   []message.Triple `json:"triples"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// Publish sends every entity in the graph to the knowledge-graph ingest
// stream. A nil client skips publishing; the batch output files remain the
// primary product and ingestion is an optional sink.
func Publish(ctx context.Context, nc *natsclient.Client, g *Graph) error {
	if nc == nil {
		return nil
	}

	now := time.Now()
	for _, entity := range g.Entities() {
		msg := EntityIngestMessage{
			ID:        entity.EntityID(),
			Triples:   ingestTriples(entity, now),
			UpdatedAt: now,
		}

		data, err := json.Marshal(msg)
		if err != nil {
			return fmt.Errorf("marshal entity %s: %w", entity.EntityID(), err)
		}
		if err := nc.PublishToStream(ctx, GraphIngestSubject, data); err != nil {
			return fmt.Errorf("publish entity %s: %w", entity.EntityID(), err)
		}
	}
	return nil
}

// ingestTriples converts an entity's statements to semstreams triples.
func ingestTriples(entity *Entity, now time.Time) []message.Triple {
	subject := entity.EntityID()
	triples := make([]message.Triple, 0, len(entity.Triples)+1)

	if class := saa.ClassIRI(entity.Type); class != "" {
		triples = append(triples, message.Triple{
			Subject:    subject,
			Predicate:  saa.RDFType,
			Object:     class,
			Source:     publishSource,
			Timestamp:  now,
			Confidence: 1.0,
		})
	}

	for _, t := range entity.Triples {
		triples = append(triples, message.Triple{
			Subject:    subject,
			Predicate:  t.Predicate,
			Object:     ingestObject(t.Object),
			Source:     publishSource,
			Timestamp:  now,
			Confidence: 1.0,
		})
	}
	return triples
}

// ingestObject flattens graph object values to plain message payload values.
func ingestObject(object any) any {
	switch v := object.(type) {
	case IRI:
		return string(v)
	case Ref:
		return fmt.Sprintf("saa.%s.%s", v.Type, v.ID)
	case Text:
		return v.Value
	case Date:
		return v.String()
	case DateText:
		return string(v)
	default:
		return object
	}
}
