package health

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/lightworkai/kycmon/internal/errors"
	"github.com/lightworkai/kycmon/internal/logger"
	"gopkg.in/yaml.v3"
)

// FileProvider serves snapshots read from a YAML dataset file. The file is
// re-read on every fetch so edits show up on the next refresh.
type FileProvider struct {
	path string
	log  logger.Logger
}

// NewFileProvider creates a provider backed by the dataset at path.
func NewFileProvider(path string, log logger.Logger) *FileProvider {
	if log == nil {
		log = logger.Noop()
	}
	return &FileProvider{path: path, log: log}
}

// Path returns the dataset file location.
func (p *FileProvider) Path() string {
	return p.path
}

// FetchHealthSnapshot loads and decodes the dataset file.
func (p *FileProvider) FetchHealthSnapshot(ctx context.Context, team Team, dateRange DateRange) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrData,
				"Dataset file not found: "+p.path,
				"Check the data_file setting or the --data flag")
		}
		return nil, errors.WrapWithCode(err, errors.ErrData,
			"Cannot read dataset file: "+p.path,
			"Check file permissions")
	}

	snap, err := DecodeSnapshot(bytes.NewReader(data))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrData,
			"Invalid dataset file: "+p.path,
			"The file must be YAML with pass_rate, alerts, checks, transactions and alert_rules keys")
	}

	p.log.Debug("loaded dataset %s: %d checks, %d transactions, %d alert rules",
		p.path, len(snap.Checks), len(snap.Transactions), len(snap.AlertRules))

	snap.Team = team
	snap.DateRange = dateRange
	return snap, nil
}

// DecodeSnapshot parses a YAML dataset. Unknown keys are rejected so typos
// surface instead of silently producing empty tables.
func DecodeSnapshot(r io.Reader) (*Snapshot, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var snap Snapshot
	if err := dec.Decode(&snap); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("dataset is empty")
		}
		return nil, err
	}
	return &snap, nil
}

// EncodeSnapshot writes s as YAML in the dataset file format.
func EncodeSnapshot(w io.Writer, s *Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}
