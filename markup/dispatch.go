package markup

// dispatch runs every configured plugin against text and returns the flat
// sequence of candidate tag events they produce, per spec section 4.1.
func dispatch(text string, plugins []PluginConfig, log *Logbook) ([]TagEvent, error) {
	var events []TagEvent

	for _, plugin := range plugins {
		matches, err := collectMatches(text, plugin, log)
		if err != nil {
			return nil, err
		}

		if len(matches) == 0 {
			// No pattern produced any match: the recognizer is not invoked.
			continue
		}

		raw := plugin.Recognizer.GetTags(text, matches)
		for _, ev := range raw {
			events = append(events, normalizePluginEvent(ev, plugin.Name))
		}
	}

	return events, nil
}

// collectMatches runs every pattern of plugin against text, enforcing
// regexpLimit truncation per spec section 4.1 step 2: once a pattern's
// matches would push the running count over the limit, that pattern is
// truncated to the remaining budget and every subsequent pattern of the
// plugin is skipped entirely.
func collectMatches(text string, plugin PluginConfig, log *Logbook) ([]MatchSet, error) {
	var all []MatchSet
	running := 0

	for _, pattern := range plugin.Patterns {
		found := findAll(pattern, text)

		if plugin.RegexpLimit > 0 && running+len(found) > plugin.RegexpLimit {
			keep := plugin.RegexpLimit - running
			if keep < 0 {
				keep = 0
			}

			switch plugin.RegexpLimitAction {
			case "abort":
				return nil, newAbortError(plugin.Name, errRegexpLimitExceeded(plugin.Name, plugin.RegexpLimit))
			case "ignore":
				log.Debug("regexp limit exceeded, excess matches dropped", 0, "", "")
			default:
				log.Warn("regexp limit exceeded, excess matches dropped", 0, "", "")
			}

			found = found[:keep]
			all = append(all, found...)
			running += len(found)
			break
		}

		all = append(all, found...)
		running += len(found)
	}

	return all, nil
}

func normalizePluginEvent(ev TagEvent, pluginName string) TagEvent {
	if ev.Attrs == nil {
		ev.Attrs = map[string]string{}
	}
	if ev.Suffix == "" {
		ev.Suffix = "-" + pluginName
	}
	ev.PluginName = pluginName
	return ev
}
