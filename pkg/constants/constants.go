package constants

const ApiBasePath = "/api/v1"

// Collection path convention shared with the hosting environment:
// artifacts/{deploymentId}/users/{userId}/{rules|violations}
const (
	RulesCollectionPathTemplate      = "artifacts/%s/users/%s/rules"
	ViolationsCollectionPathTemplate = "artifacts/%s/users/%s/violations"
)

// DefaultDeploymentId is used when the hosting environment does not inject one.
const DefaultDeploymentId = "default-app-id"

// Rule types
const (
	RuleTypeNamingConvention         = "Naming Convention"
	RuleTypeBudgetLimit              = "Budget Limit"
	RuleTypeTargetingParameter       = "Targeting Parameter"
	RuleTypeCreativeAssetRequirement = "Creative Asset Requirement"
	RuleTypeSchedulingConstraint     = "Scheduling Constraint"
)

// Advertising platforms
const (
	PlatformFacebookAds  = "Facebook Ads"
	PlatformGoogleAds    = "Google Ads"
	PlatformLinkedInAds  = "LinkedIn Ads"
	PlatformYouTubeAds   = "YouTube Ads"
	PlatformInstagramAds = "Instagram Ads"
	PlatformRedditAds    = "Reddit Ads"
)

// PlatformAll is the sentinel value that disables platform filtering.
const PlatformAll = "All"

// Violation statuses. The enumeration is open ended; only these two are
// produced by this service.
const (
	ViolationStatusDetected = "Detected"
	ViolationStatusResolved = "Resolved"
)

// DefaultSuggestionEndpoint is the text generation endpoint used when the
// configuration does not override it.
const DefaultSuggestionEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"
