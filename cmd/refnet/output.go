package main

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"
)

// report wraps every command's payload with run metadata.
type report struct {
	RunID       string    `json:"run_id" yaml:"run_id"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	Command     string    `json:"command" yaml:"command"`
	Result      any       `json:"result" yaml:"result"`
}

func (a *app) emit(command string, result any) error {
	r := report{RunID: a.runID, GeneratedAt: time.Now().UTC(), Command: command, Result: result}
	if a.format == formatJSON {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(r), "encode json")
	}
	enc := yaml.NewEncoder(a.out)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return errors.Wrap(err, "encode yaml")
	}
	return errors.Wrap(enc.Close(), "encode yaml")
}
