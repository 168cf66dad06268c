package models

// Rule represents one governance constraint applied to advertising
// campaign metadata. Condition grammar depends on Type (regex for naming
// conventions, numeric ranges for budgets and targeting) and is not
// validated by this service.
type Rule struct {
	RuleId         string `json:"id" bson:"rule_id"`
	Name           string `json:"name" bson:"name"`
	Type           string `json:"type" bson:"type"`
	Platform       string `json:"platform" bson:"platform"`
	Condition      string `json:"condition" bson:"condition"`
	Message        string `json:"message" bson:"message"`
	IsActive       bool   `json:"isActive" bson:"is_active"`
	CreatedAt      string `json:"createdAt,omitempty" bson:"created_at,omitempty"`
	CreatedBy      string `json:"createdBy,omitempty" bson:"created_by,omitempty"`
	LastModifiedAt string `json:"lastModifiedAt,omitempty" bson:"last_modified_at,omitempty"`
}
