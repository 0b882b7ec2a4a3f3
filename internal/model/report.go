package model

// StatusCount is one row of the order-status report.
type StatusCount struct {
	Status string `json:"status" bson:"_id"`
	Count  int64  `json:"count" bson:"count"`
}

// MonthCount is one row of the monthly registrations report. Month is
// formatted as "2006-01".
type MonthCount struct {
	Month string `json:"month" bson:"_id"`
	Count int64  `json:"count" bson:"count"`
}

// WeekKey identifies an ISO week.
type WeekKey struct {
	Year int32 `json:"year" bson:"year"`
	Week int32 `json:"week" bson:"week"`
}

// WeekCount is one row of the weekly registrations report.
type WeekCount struct {
	Week  WeekKey `json:"week" bson:"_id"`
	Count int64   `json:"count" bson:"count"`
}
