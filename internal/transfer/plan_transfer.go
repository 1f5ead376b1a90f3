package transfer

type PlanRequest struct {
	Language    string `json:"language"`
	Niche       string `json:"niche"`
	Tone        string `json:"tone"`
	Goal        string `json:"goal"`
	PostCount   int    `json:"postCount"`
	Timezone    string `json:"timezone"`
	Hour        int    `json:"hour"`
	Minute      int    `json:"minute"`
	AutoApprove *bool  `json:"autoApprove"`
}

type PlannedItem struct {
	DraftID    string `json:"draftId"`
	ScheduleID string `json:"scheduleId"`
	RunAt      string `json:"runAt"`
}
