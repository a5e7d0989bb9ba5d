package config

import (
	"fmt"
	"regexp"

	"github.com/tidwall/gjson"

	"github.com/inkwell-forum/markup/markup"
	"github.com/inkwell-forum/markup/markup/filter"
)

// LoadSchemaJSON reads tag and filter configuration from a JSON document
// using gjson's non-allocating path traversal, and attaches plugins (which
// carry Go recognizer functions the JSON format has no way to express).
//
// Expected shape:
//
//	{
//	  "rootAllow": ["B", "URL"],
//	  "filters": {"allowedSchemes": "^https?$", "disallowedHosts": "^localhost$"},
//	  "tags": {
//	    "B": {
//	      "allow": ["I", "URL"],
//	      "nestingLimit": 4,
//	      "tagLimit": 0,
//	      "trimBefore": false, "ltrimContent": false, "rtrimContent": false, "trimAfter": false,
//	      "rules": {"closeParent": ["LI"], "requireParent": "UL", "requireAscendant": ["QUOTE"]},
//	      "attrs": {
//	        "href": {"type": "url", "required": true},
//	        "size": {"type": "range", "min": 8, "max": 20, "default": "12"}
//	      }
//	    }
//	  }
//	}
func LoadSchemaJSON(doc string, plugins ...markup.PluginConfig) (*markup.Schema, error) {
	if !gjson.Valid(doc) {
		return nil, markup.NewConfigError("invalid-json", fmt.Errorf("schema document is not valid JSON"))
	}

	root := gjson.Parse(doc)
	b := New()

	root.Get("tags").ForEach(func(name, val gjson.Result) bool {
		cfg, err := parseTagConfig(val)
		if err != nil {
			b.err = err
			return false
		}
		b.AddTag(name.String(), cfg)
		return b.err == nil
	})
	if b.err != nil {
		return nil, b.err
	}

	filtersCfg, err := parseFilterConfig(root.Get("filters"))
	if err != nil {
		return nil, err
	}
	b.WithFilters(filtersCfg)

	rootAllow := stringArray(root.Get("rootAllow"))
	if len(rootAllow) > 0 {
		b.WithRootAllow(rootAllow...)
	}

	for _, p := range plugins {
		b.AddPlugin(p)
	}

	return b.Build()
}

func parseTagConfig(val gjson.Result) (markup.TagConfig, error) {
	cfg := markup.TagConfig{
		NestingLimit: int(val.Get("nestingLimit").Int()),
		TagLimit:     int(val.Get("tagLimit").Int()),
		TrimBefore:   val.Get("trimBefore").Bool(),
		LTrimContent: val.Get("ltrimContent").Bool(),
		RTrimContent: val.Get("rtrimContent").Bool(),
		TrimAfter:    val.Get("trimAfter").Bool(),
	}

	if allow := stringArray(val.Get("allow")); len(allow) > 0 {
		set := make(map[string]struct{}, len(allow))
		for _, name := range allow {
			set[name] = struct{}{}
		}
		cfg.Allow = set
	}

	if rules := val.Get("rules"); rules.Exists() {
		cfg.Rules = &markup.TagRules{
			CloseParent:      stringArray(rules.Get("closeParent")),
			RequireParent:    rules.Get("requireParent").String(),
			RequireAscendant: stringArray(rules.Get("requireAscendant")),
		}
	}

	if attrs := val.Get("attrs"); attrs.Exists() {
		cfg.Attrs = make(map[string]markup.AttrConfig)
		var parseErr error
		attrs.ForEach(func(attrName, attrVal gjson.Result) bool {
			ac, err := parseAttrConfig(attrVal)
			if err != nil {
				parseErr = fmt.Errorf("attribute %q: %w", attrName.String(), err)
				return false
			}
			cfg.Attrs[attrName.String()] = ac
			return true
		})
		if parseErr != nil {
			return markup.TagConfig{}, markup.NewConfigError("invalid-attr", parseErr)
		}
	}

	return cfg, nil
}

func parseAttrConfig(val gjson.Result) (markup.AttrConfig, error) {
	ac := markup.AttrConfig{
		Type:     val.Get("type").String(),
		Required: val.Get("required").Bool(),
		Replace:  val.Get("replace").String(),
	}

	if d := val.Get("default"); d.Exists() {
		s := d.String()
		ac.Default = &s
	}
	if r := val.Get("regexp"); r.Exists() {
		s := r.String()
		if _, err := regexp.Compile(s); err != nil {
			return markup.AttrConfig{}, fmt.Errorf("invalid regexp: %w", err)
		}
		ac.Regexp = &s
	}
	if m := val.Get("min"); m.Exists() {
		v := m.Float()
		ac.Min = &v
	}
	if m := val.Get("max"); m.Exists() {
		v := m.Float()
		ac.Max = &v
	}

	return ac, nil
}

func parseFilterConfig(val gjson.Result) (filter.Config, error) {
	var cfg filter.Config

	if s := val.Get("allowedSchemes"); s.Exists() {
		re, err := regexp.Compile(s.String())
		if err != nil {
			return cfg, markup.NewConfigError("invalid-regexp", fmt.Errorf("allowedSchemes: %w", err))
		}
		cfg.AllowedSchemes = re
	}
	if h := val.Get("disallowedHosts"); h.Exists() {
		re, err := regexp.Compile(h.String())
		if err != nil {
			return cfg, markup.NewConfigError("invalid-regexp", fmt.Errorf("disallowedHosts: %w", err))
		}
		cfg.DisallowedHosts = re
	}

	return cfg, nil
}

func stringArray(val gjson.Result) []string {
	if !val.Exists() {
		return nil
	}
	arr := val.Array()
	out := make([]string, len(arr))
	for i, v := range arr {
		out[i] = v.String()
	}
	return out
}
