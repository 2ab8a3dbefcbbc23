// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-metrics.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tsz

import (
	"encoding/json"

	cclog "github.com/ClusterCockpit/cc-lib/v2/ccLogger"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// configSchema validates the JSON configuration accepted by
// ParseStoreConfig. It is a raw JSON-Schema string compiled once per
// call; the schema document doubles as the field-level reference for
// operators writing a config file.
const configSchema = `{
  "type": "object",
  "description": "Configuration for the tsz metric value store.",
  "properties": {
    "num-shards": {
      "description": "Number of store shards, decoded into StoreConfig.NumShards. store.NewWithShards rounds a shard count up to the next power of two and treats zero as one shard.",
      "type": "integer",
      "minimum": 0
    },
    "default-bucketer": {
      "description": "Distribution bucket geometry, decoded into StoreConfig.DefaultBucketer and built by BucketerSpec.Bucketer. EventMetrics without Options.Bucketer use tsz.DefaultBucketer(), not this setting.",
      "type": "object",
      "properties": {
        "kind": {
          "type": "string",
          "enum": ["fixed-width", "powers-of", "scaled-powers-of"]
        },
        "width": { "type": "number" },
        "base": { "type": "number" },
        "scale": { "type": "number" },
        "max": { "type": "number" },
        "num-finite-buckets": { "type": "integer", "minimum": 0 }
      },
      "required": ["kind"]
    }
  }
}`

// BucketerSpec is the JSON shape of a configured Bucketer, as used in
// StoreConfig.DefaultBucketer.
type BucketerSpec struct {
	Kind             string  `json:"kind"`
	Width            float64 `json:"width"`
	Base             float64 `json:"base"`
	Scale            float64 `json:"scale"`
	Max              float64 `json:"max"`
	NumFiniteBuckets uint32  `json:"num-finite-buckets"`
}

// Bucketer builds the *Bucketer this spec describes.
func (b BucketerSpec) Bucketer() *Bucketer {
	switch b.Kind {
	case "fixed-width":
		return FixedWidth(b.Width, b.NumFiniteBuckets)
	case "scaled-powers-of":
		return ScaledPowersOf(b.Base, b.Scale, b.Max)
	case "powers-of":
		return PowersOf(b.Base)
	default:
		return DefaultBucketer()
	}
}

// StoreConfig is the JSON-configurable subset of a store's behavior:
// shard count and the default Distribution bucketer. Everything else
// (the fatal handler, the clock) is an in-process wiring concern, not
// something an operator edits in a config file.
type StoreConfig struct {
	NumShards       int           `json:"num-shards"`
	DefaultBucketer *BucketerSpec `json:"default-bucketer,omitempty"`
}

// ParseStoreConfig validates raw against configSchema and unmarshals
// it into a StoreConfig. A schema violation is fatal: malformed
// startup configuration is not a condition calling code is expected
// to recover from.
func ParseStoreConfig(raw json.RawMessage) StoreConfig {
	sch, err := jsonschema.CompileString("tsz-store-config.json", configSchema)
	if err != nil {
		cclog.Fatalf("tsz: invalid embedded config schema: %#v", err)
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		cclog.Fatalf("tsz: malformed store config: %s", err)
	}
	if err := sch.Validate(v); err != nil {
		cclog.Fatalf("tsz: store config failed validation: %#v", err)
	}

	var cfg StoreConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		cclog.Fatalf("tsz: store config failed to decode: %s", err)
	}
	return cfg
}
