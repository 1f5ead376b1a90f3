package transfer

type ScheduleCreation struct {
	DraftID  string `json:"draftId"`
	RunAt    string `json:"runAt"`
	Timezone string `json:"timezone"`
}
