// Package testfixtures holds JSON schema documents and small builder
// helpers shared across the markup test suite, loaded through
// markup/config's gjson-backed loader.
package testfixtures

// BBCodeSchemaJSON defines B/I/QUOTE/LIST/LI/URL tags exercising nesting
// limits, closeParent, requireParent, and allow-sets.
const BBCodeSchemaJSON = `{
  "rootAllow": ["B", "I", "QUOTE", "LIST", "LI", "URL"],
  "filters": {"allowedSchemes": "^https?$"},
  "tags": {
    "B": {"allow": ["I", "URL"], "nestingLimit": 4},
    "I": {"allow": ["B", "URL"], "nestingLimit": 4},
    "QUOTE": {"allow": ["B", "I", "URL", "QUOTE"], "nestingLimit": 3},
    "LIST": {"allow": ["LI"]},
    "LI": {
      "allow": ["B", "I", "URL"],
      "rules": {"closeParent": ["LI"], "requireParent": "LIST"}
    },
    "URL": {
      "attrs": {
        "url": {"type": "url", "required": true}
      }
    }
  }
}`

// RangeSchemaJSON defines a single SIZE tag with a clamped numeric range
// attribute, for exercising the range filter's clamp-and-warn behavior.
const RangeSchemaJSON = `{
  "tags": {
    "SIZE": {
      "attrs": {
        "value": {"type": "range", "min": 8, "max": 20, "default": "12"}
      }
    }
  }
}`
