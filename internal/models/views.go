package models

// ApplicationWithApplicant is an application row joined with the applicant's
// public profile fields, as returned by the employer-facing listing.
type ApplicationWithApplicant struct {
	Application
	ApplicantName    string  `json:"applicant_name"`
	ApplicantEmail   string  `json:"applicant_email"`
	ApplicantProfile Profile `json:"applicant_profile"`
}

// ApplicationWithJob is an application row joined with its job's summary
// fields, as returned by the applicant-facing listing. The join is an inner
// join, so applications whose job no longer exists never surface here.
type ApplicationWithJob struct {
	Application
	JobTitle    string `json:"job_title"`
	JobCompany  string `json:"job_company"`
	JobLocation string `json:"job_location"`
}

// MessageWithSender is a message row joined with the sender's display
// fields.
type MessageWithSender struct {
	Message
	SenderName        string `json:"sender_name"`
	SenderCompanyName string `json:"sender_company_name,omitempty"`
}
