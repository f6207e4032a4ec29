package request

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"reqsign/internal/domain"
	"reqsign/internal/errors"
)

// FileSource reads snapshots from YAML or JSON files; the request ID is the path.
type FileSource struct{}

// Snapshot loads the snapshot stored at requestID.
//
//	method: POST
//	url: https://api.example.com/v1/payments
//	body:
//	  mimeType: application/json
//	  text: '{"amount":"100"}'
func (FileSource) Snapshot(ctx context.Context, requestID string) (domain.RequestSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return domain.RequestSnapshot{}, err
	}
	data, err := os.ReadFile(requestID)
	if err != nil {
		return domain.RequestSnapshot{}, errors.Wrapf(err, "read request file %s", requestID)
	}
	return ParseSnapshot(data, filepath.Ext(requestID))
}

// ParseSnapshot decodes a snapshot document. ext selects JSON for ".json" and
// YAML otherwise; YAML also accepts JSON input.
func ParseSnapshot(data []byte, ext string) (domain.RequestSnapshot, error) {
	var snap domain.RequestSnapshot
	var err error
	if strings.EqualFold(ext, ".json") {
		err = json.Unmarshal(data, &snap)
	} else {
		err = yaml.Unmarshal(data, &snap)
	}
	if err != nil {
		return domain.RequestSnapshot{}, errors.Wrap(err, "decode request snapshot")
	}
	if snap.URL == "" {
		return domain.RequestSnapshot{}, fmt.Errorf("request snapshot has no url")
	}
	return snap, nil
}

// Static always returns the same snapshot, whatever the request ID.
type Static domain.RequestSnapshot

// Snapshot returns s.
func (s Static) Snapshot(context.Context, string) (domain.RequestSnapshot, error) {
	return domain.RequestSnapshot(s), nil
}

// Map serves snapshots by ID from memory.
type Map map[string]domain.RequestSnapshot

// Snapshot returns the snapshot registered under requestID.
func (m Map) Snapshot(_ context.Context, requestID string) (domain.RequestSnapshot, error) {
	snap, ok := m[requestID]
	if !ok {
		return domain.RequestSnapshot{}, fmt.Errorf("unknown request %q", requestID)
	}
	return snap, nil
}

// Compile-time assertions.
var (
	_ domain.RequestSource = FileSource{}
	_ domain.RequestSource = Static{}
	_ domain.RequestSource = Map{}
)
