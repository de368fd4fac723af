package dtos

type PrayerTimesQuery struct {
	TimeZone    string `query:"timeZone" validate:"required,timezone_name"`
	Latitude    string `query:"latitude" validate:"required,numeric,latitude"`
	Longitude   string `query:"longitude" validate:"required,numeric,longitude"`
	MonthOfYear string `query:"monthOfYear" validate:"required,month_of_year"`
}

type DailyPrayersResponse struct {
	Date    string `json:"date"`
	Fajr    string `json:"fajr"`
	Sunrise string `json:"sunrise"`
	Dhuhr   string `json:"dhuhr"`
	Asr     string `json:"asr"`
	Maghrib string `json:"maghrib"`
	Isha    string `json:"isha"`
}
