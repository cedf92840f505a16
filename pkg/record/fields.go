package record

import (
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// SafeFields returns fields with every value BSON cannot encode (complex
// numbers, uintptr, channels, funcs, and anything containing them) replaced
// by its fmt rendering. A map that already encodes is returned as is.
func SafeFields(fields map[string]any) map[string]any {
	if len(fields) == 0 {
		return fields
	}
	if _, err := bson.Marshal(fields); err == nil {
		return fields
	}
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		if _, err := bson.Marshal(bson.D{{Key: k, Value: v}}); err != nil {
			out[k] = fmt.Sprint(v)
			continue
		}
		out[k] = v
	}
	return out
}
