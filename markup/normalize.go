package markup

import "strings"

// normalize uppercases every event's name and drops events whose name isn't
// present in the schema, per spec section 4.2.
func normalize(events []TagEvent, schema *Schema, log *Logbook) []TagEvent {
	out := make([]TagEvent, 0, len(events))

	for _, ev := range events {
		ev.Name = strings.ToUpper(ev.Name)

		if _, ok := schema.Tags[ev.Name]; !ok {
			log.Debug("unknown tag removed", ev.Pos, ev.Name, "")
			continue
		}

		out = append(out, ev)
	}

	return out
}
