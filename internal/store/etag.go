package store

import (
	"encoding/json"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/GregMSThompson/travel-admin/internal/models"
)

// RecordETag fingerprints a package record so a positional edit can check it
// still addresses the record the caller listed.
func RecordETag(r models.PackageRecord) string {
	b, err := json.Marshal(r)
	if err != nil {
		return ""
	}
	return strconv.FormatUint(xxhash.Sum64(b), 16)
}
