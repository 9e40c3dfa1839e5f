package export

import (
	"fmt"
	"io"

	"github.com/goldenagents/saagraph/linkage"
	"github.com/goldenagents/saagraph/vocabulary/saa"
)

// WriteLinkset serializes a linkset as Turtle: a saa prefix declaration
// followed by a symmetric statement pair per accepted link, in linkset
// insertion order. The dataset and act type that justified a link are
// diagnostic inputs, not part of the emitted statements.
func WriteLinkset(w io.Writer, ls *linkage.Linkset) error {
	if _, err := fmt.Fprintf(w, "@prefix saa: <%s> .\n\n", saa.Namespace); err != nil {
		return fmt.Errorf("write linkset prefix: %w", err)
	}

	for _, inventory := range ls.Inventories() {
		iri, _ := saa.InstanceIRI(saa.EntityTypeInventory, inventory)
		for _, link := range ls.Links(inventory) {
			_, err := fmt.Fprintf(w,
				"<%s> saa:inventory <%s> .\n<%s> saa:isInRecord <%s> .\n",
				link.Record, iri, iri, link.Record)
			if err != nil {
				return fmt.Errorf("write link for %s: %w", inventory, err)
			}
		}
	}
	return nil
}
