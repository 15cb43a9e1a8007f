package domain

import "time"

// AuditEntry records one mutating API request, attributed to the
// authenticated actor that performed it ("anonymous" for public routes).
type AuditEntry struct {
	Actor     string    `json:"actor" bson:"actor"`
	Method    string    `json:"method" bson:"method"`
	Route     string    `json:"route" bson:"route"`
	Status    int       `json:"status" bson:"status"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}
