package models

// Violation represents one detected (or simulated) rule breach. RuleName is
// an informal reference to a Rule by display name, not a foreign key.
type Violation struct {
	ViolationId         string `json:"id" bson:"violation_id"`
	Timestamp           string `json:"timestamp" bson:"timestamp"`
	RuleName            string `json:"ruleName" bson:"rule_name"`
	UserId              string `json:"userId" bson:"user_id"`
	CampaignId          string `json:"campaignId" bson:"campaign_id"`
	Platform            string `json:"platform" bson:"platform"`
	FieldName           string `json:"fieldName" bson:"field_name"`
	OriginalValue       string `json:"originalValue" bson:"original_value"`
	SuggestedCorrection string `json:"suggestedCorrection" bson:"suggested_correction"`
	Status              string `json:"status" bson:"status"`
}

// FieldValues returns the string form of every field on the record, used by
// the free-text violation filter.
func (v Violation) FieldValues() []string {
	return []string{
		v.ViolationId,
		v.Timestamp,
		v.RuleName,
		v.UserId,
		v.CampaignId,
		v.Platform,
		v.FieldName,
		v.OriginalValue,
		v.SuggestedCorrection,
		v.Status,
	}
}
