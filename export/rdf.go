// Package export serializes entity graphs and linksets to RDF.
package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goldenagents/saagraph/graph"
	"github.com/goldenagents/saagraph/vocabulary/saa"
)

// Exporter serializes one or more dataset graphs. TriG keeps each dataset
// in its own named graph; Turtle and N-Triples concatenate the datasets
// into one default graph. Entities are emitted in graph insertion order.
type Exporter struct {
	graphs   []*graph.Graph
	prefixes map[string]string
}

// NewExporter creates an exporter over the given dataset graphs.
func NewExporter(graphs ...*graph.Graph) *Exporter {
	return &Exporter{
		graphs:   graphs,
		prefixes: defaultPrefixes(),
	}
}

// defaultPrefixes returns the standard namespace prefixes for RDF export.
func defaultPrefixes() map[string]string {
	return map[string]string{
		"rdf":          "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
		"rdfs":         "http://www.w3.org/2000/01/rdf-schema#",
		"xsd":          "http://www.w3.org/2001/XMLSchema#",
		"ga":           saa.DatasetNamespace,
		"saa":          saa.Namespace,
		"saaPerson":    saa.PersonNamespace,
		"saaInventory": saa.InventoryNamespace,
		"saaItem":      saa.ItemNamespace,
		"tgn":          saa.TGNNamespace,
	}
}

// SetPrefix sets a namespace prefix used in prefix declarations.
func (e *Exporter) SetPrefix(prefix, iri string) {
	e.prefixes[prefix] = iri
}

// Export serializes all graphs to the specified format.
func (e *Exporter) Export(format Format) (string, error) {
	switch format {
	case FormatTriG:
		return e.toTriG(), nil
	case FormatTurtle:
		return e.toTurtle(), nil
	case FormatNTriples:
		return e.toNTriples(), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// toTriG serializes each dataset graph as a named graph block.
func (e *Exporter) toTriG() string {
	var sb strings.Builder
	e.writePrefixes(&sb)

	for _, g := range e.graphs {
		sb.WriteString(fmt.Sprintf("<%s> {\n", g.GraphIRI()))
		for _, entity := range g.Entities() {
			writeEntityTurtle(&sb, entity)
		}
		sb.WriteString("}\n\n")
	}

	return sb.String()
}

// toTurtle serializes all dataset graphs into one default graph.
func (e *Exporter) toTurtle() string {
	var sb strings.Builder
	e.writePrefixes(&sb)

	for _, g := range e.graphs {
		for _, entity := range g.Entities() {
			writeEntityTurtle(&sb, entity)
		}
	}

	return sb.String()
}

// toNTriples serializes all dataset graphs as one triple per line.
func (e *Exporter) toNTriples() string {
	var sb strings.Builder

	for _, g := range e.graphs {
		for _, entity := range g.Entities() {
			subject := subjectTerm(entity.Type, entity.ID)
			if class := saa.ClassIRI(entity.Type); class != "" {
				sb.WriteString(fmt.Sprintf("%s <%s> <%s> .\n", subject, saa.RDFType, class))
			}
			for _, t := range entity.Triples {
				sb.WriteString(fmt.Sprintf("%s <%s> %s .\n",
					subject, saa.PredicateIRI(t.Predicate), formatObjectFull(t.Object)))
			}
		}
	}

	return sb.String()
}

// writePrefixes writes the prefix declarations in sorted order.
func (e *Exporter) writePrefixes(sb *strings.Builder) {
	keys := make([]string, 0, len(e.prefixes))
	for k := range e.prefixes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, prefix := range keys {
		sb.WriteString(fmt.Sprintf("@prefix %s: <%s> .\n", prefix, e.prefixes[prefix]))
	}
	sb.WriteString("\n")
}

// writeEntityTurtle writes one entity as a Turtle subject block.
func writeEntityTurtle(sb *strings.Builder, entity *graph.Entity) {
	sb.WriteString(subjectTerm(entity.Type, entity.ID))
	sb.WriteString("\n")

	var lines []string
	if class := saa.ClassIRI(entity.Type); class != "" {
		lines = append(lines, fmt.Sprintf("    a <%s>", class))
	}
	for _, t := range entity.Triples {
		lines = append(lines, fmt.Sprintf("    <%s> %s",
			saa.PredicateIRI(t.Predicate), formatObject(t.Object)))
	}

	sb.WriteString(strings.Join(lines, " ;\n"))
	sb.WriteString(" .\n\n")
}

// subjectTerm renders an entity as a subject: an IRI reference, or a blank
// node for entity types without a published instance namespace.
func subjectTerm(t saa.EntityType, id string) string {
	iri, blank := saa.InstanceIRI(t, id)
	if blank {
		return "_:" + id
	}
	return fmt.Sprintf("<%s>", iri)
}

// formatObject renders an object value for Turtle/TriG output.
func formatObject(obj any) string {
	switch v := obj.(type) {
	case graph.IRI:
		return fmt.Sprintf("<%s>", v)
	case graph.Ref:
		return subjectTerm(v.Type, v.ID)
	case graph.Text:
		if v.Lang == "" {
			return fmt.Sprintf("\"%s\"", escapeString(v.Value))
		}
		return fmt.Sprintf("\"%s\"@%s", escapeString(v.Value), v.Lang)
	case graph.Date:
		return fmt.Sprintf("\"%s\"^^xsd:date", v)
	case graph.DateText:
		return fmt.Sprintf("\"%s\"^^xsd:date", escapeString(string(v)))
	case string:
		return fmt.Sprintf("\"%s\"", escapeString(v))
	default:
		return fmt.Sprintf("\"%v\"", v)
	}
}

// formatObjectFull renders an object value for N-Triples output, spelling
// datatype IRIs out in full.
func formatObjectFull(obj any) string {
	switch v := obj.(type) {
	case graph.Date:
		return fmt.Sprintf("\"%s\"^^<%s>", v, saa.XSDDate)
	case graph.DateText:
		return fmt.Sprintf("\"%s\"^^<%s>", escapeString(string(v)), saa.XSDDate)
	default:
		return formatObject(obj)
	}
}

// escapeString escapes special characters in strings for RDF serialization.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
