package domain

// Default legal text applied when an order form is created without overrides.
const (
	DefaultSuccessCriteria = `Deployment is considered successful when all subscribed cameras stream to the platform, the agreed detection scenarios are active, and the customer team has completed onboarding.`

	DefaultTerms = `Subscription fees are invoiced in advance for each billing period. One-time charges are invoiced on signature. Either party may terminate for material breach with thirty (30) days written notice and opportunity to cure. All prices exclude applicable taxes.`
)
