package usecase

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// generateOrderNumber produces an opaque order token: a base36 timestamp
// segment plus a random segment. Uniqueness rests on entropy; the create path
// still retries on a collision because the database enforces it.
var generateOrderNumber = func() string {
	ts := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))
	random := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:4])
	return fmt.Sprintf("ORD-%s-%s", ts, random)
}
