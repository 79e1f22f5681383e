package place_order

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewOrderNumber returns ORD-<unix millis>-<8 random hex chars>.
func NewOrderNumber(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return "ORD-" + strconv.FormatInt(now.UnixMilli(), 10) + "-" + suffix
}
