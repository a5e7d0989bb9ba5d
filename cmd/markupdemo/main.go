// Command markupdemo exercises the markup engine end to end: it builds a
// small default schema, feeds it one or more input documents concurrently
// (one Engine per document, sharing one read-only Schema), and prints the
// resulting XML tree plus any diagnostics collected along the way.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/inkwell-forum/markup/markup"
	"github.com/inkwell-forum/markup/markup/config"
	"github.com/inkwell-forum/markup/markup/plugins"
)

type demoConfig struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	SchemaFile  string `mapstructure:"SCHEMA_FILE"`
	InputFile   string `mapstructure:"INPUT_FILE"`
}

func loadConfig(path string) (demoConfig, error) {
	var cfg demoConfig

	viper.AddConfigPath(path)
	viper.SetConfigName("markupdemo")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return cfg, err
		}
	}

	err := viper.Unmarshal(&cfg)
	return cfg, err
}

func main() {
	cfg, err := loadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot read config file")
	}

	if cfg.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	schema, err := buildSchema(cfg.SchemaFile)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot build schema")
	}

	docs, err := readDocuments(cfg.InputFile)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot read input")
	}

	results, err := parseAll(schema, docs)
	if err != nil {
		log.Fatal().Err(err).Msg("parse failed")
	}

	for i, res := range results {
		fmt.Printf("--- document %d ---\n%s\n", i, res.Document)
		for _, entry := range res.Log.Serializable() {
			fmt.Printf("[%s] pos=%d tag=%s attr=%s msg=%s\n", entry.Severity, entry.Pos, entry.TagName, entry.AttrName, entry.Msg)
		}
	}
}

func buildSchema(schemaFile string) (*markup.Schema, error) {
	recognizers := []markup.PluginConfig{
		plugins.BBCodePlugin(0, "warn"),
		plugins.AutolinkPlugin(0, "warn"),
		plugins.EmoticonPlugin(nil, 0, "warn"),
		plugins.HTMLEntityPlugin(0, "warn"),
		plugins.LinebreakPlugin(0, "warn"),
		plugins.InlinePlugin(0, "warn"),
	}

	if schemaFile != "" {
		raw, err := os.ReadFile(schemaFile)
		if err != nil {
			return nil, err
		}
		return config.LoadSchemaJSON(string(raw), recognizers...)
	}

	b := config.New()
	for _, r := range recognizers {
		b.AddPlugin(r)
	}

	b.AddTag("B", markup.TagConfig{})
	b.AddTag("I", markup.TagConfig{})
	b.AddTag("S", markup.TagConfig{})
	b.AddTag("CODE", markup.TagConfig{})
	b.AddTag("URL", markup.TagConfig{
		Attrs: map[string]markup.AttrConfig{
			"url": {Type: "url", Required: true},
		},
	})
	b.AddTag("EMOTICON", markup.TagConfig{
		Attrs: map[string]markup.AttrConfig{
			"name": {Type: "identifier", Required: true},
		},
	})
	b.AddTag("ENTITY", markup.TagConfig{
		Attrs: map[string]markup.AttrConfig{
			"value": {Type: "text", Required: true},
		},
	})
	b.AddTag("BR", markup.TagConfig{})

	return b.Build()
}

func readDocuments(path string) ([]string, error) {
	if path == "" {
		return []string{"Check out https://example.com/ :) and press [b]enter[/b]."}, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	docs := strings.Split(string(raw), "\n---\n")
	return docs, nil
}

// parseAll demonstrates that a Schema is safe to share read-only across
// concurrently running Engines: one Engine per document, all racing over the
// same Schema, coordinated with errgroup so the first fatal parse error is
// the one returned. The other parses are not cancelled; they run to
// completion and their results are discarded.
func parseAll(schema *markup.Schema, docs []string) ([]markup.Result, error) {
	results := make([]markup.Result, len(docs))

	g, _ := errgroup.WithContext(context.Background())
	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			engine := markup.NewEngine(schema)
			res, err := engine.Parse(doc)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
