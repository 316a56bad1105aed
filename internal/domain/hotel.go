package domain

type Hotel struct {
	ID           int32  `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	Email        string `json:"email"`
	Stars        int32  `json:"stars"`
	CheckInTime  string `json:"check_in_time,omitempty"`  // "15:04", informational
	CheckOutTime string `json:"check_out_time,omitempty"` // "15:04", informational
	CreatedOn    string `json:"created_on"`
}
