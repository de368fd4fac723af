package dtos

type PrayerSurahAyatQuery struct {
	SurahId  string `query:"surahId" validate:"required,surah_id"`
	StartAya string `query:"startAya" validate:"required,number"`
	EndAya   string `query:"endAya" validate:"required,number"`
}

type PrayerSurahAyatResponse struct {
	SurahId  int16 `json:"surahId"`
	StartAya int16 `json:"startAya"`
	EndAya   int16 `json:"endAya"`
}

type PrayerSurahAyatRecordResponse struct {
	Id       int32  `json:"id"`
	UserId   string `json:"userId"`
	SurahId  int16  `json:"surahId"`
	StartAya int16  `json:"startAya"`
	EndAya   int16  `json:"endAya"`
}
