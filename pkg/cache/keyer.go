package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Hash returns the hex SHA-256 of data. Table hashes and file cache paths use it.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Keyer derives cache keys.
type Keyer interface {
	// TableKey identifies a frequency table by its content.
	TableKey(data []byte) string

	// ArtifactKey identifies one rendered output of a table.
	ArtifactKey(tableHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts holds every option that changes a rendered artifact.
type ArtifactKeyOpts struct {
	Format     string  `json:"format"`
	Limit      int     `json:"limit"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Title      string  `json:"title,omitempty"`
	Background string  `json:"background,omitempty"`
	Tooltips   bool    `json:"tooltips,omitempty"`
}

// DefaultKeyer produces "table:<sha256>" and "artifact:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// TableKey returns "table:" followed by the SHA-256 of data.
func (DefaultKeyer) TableKey(data []byte) string {
	return "table:" + Hash(data)
}

// ArtifactKey returns "artifact:" followed by the SHA-256 of the table hash
// and opts. ArtifactKeyOpts holds only plain fields, so encoding cannot fail.
func (DefaultKeyer) ArtifactKey(tableHash string, opts ArtifactKeyOpts) string {
	data, _ := json.Marshal(struct {
		Table string          `json:"table"`
		Opts  ArtifactKeyOpts `json:"opts"`
	}{tableHash, opts})
	return "artifact:" + Hash(data)
}

var _ Keyer = DefaultKeyer{}
