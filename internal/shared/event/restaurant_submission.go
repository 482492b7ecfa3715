package event

// Partner integrations publish restaurant submissions; the restaurant module
// validates each one and answers on RestaurantValidationReportDestination.
const (
	RestaurantSubmissionDestination       string = "restaurant_submission"
	RestaurantSubmissionConsumerValidator string = "restaurant_submission_validator"
	RestaurantValidationReportDestination string = "restaurant_validation_report"
)

type RestaurantSubmissionMessage struct {
	SubmissionID string            `json:"submission_id"`
	PartnerID    string            `json:"partner_id"`
	Restaurant   RestaurantPayload `json:"restaurant"`
}

type RestaurantValidationReportMessage struct {
	SubmissionID string              `json:"submission_id"`
	PartnerID    string              `json:"partner_id"`
	Valid        bool                `json:"valid"`
	ErrorCount   int                 `json:"error_count"`
	Errors       map[string][]string `json:"errors"`
}
