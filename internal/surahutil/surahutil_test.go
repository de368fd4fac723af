package surahutil

import "testing"

func TestAyaCount(t *testing.T) {
	total := 0
	for surahId := 1; surahId <= NumOfSurahs; surahId++ {
		count, ok := AyaCount(surahId)
		if !ok {
			t.Fatalf("expected surah %d to be valid", surahId)
		}
		total += count
	}

	if total != 6236 {
		t.Fatalf("expected 6236 ayat in total, got %d", total)
	}

	if count, _ := AyaCount(2); count != 286 {
		t.Fatalf("expected Al-Baqarah to have 286 ayat, got %d", count)
	}

	if _, ok := AyaCount(115); ok {
		t.Fatal("expected surah 115 to be invalid")
	}
}

func TestIsSurahIdValid(t *testing.T) {
	table := []struct {
		surahId  int
		expected bool
	}{
		{surahId: 0, expected: false},
		{surahId: 1, expected: true},
		{surahId: 114, expected: true},
		{surahId: 115, expected: false},
		{surahId: -1, expected: false},
	}

	for _, v := range table {
		if got := IsSurahIdValid(v.surahId); got != v.expected {
			t.Errorf("IsSurahIdValid(%d): expected %v, got %v", v.surahId, v.expected, got)
		}
	}
}

func TestIsAyaStartEndNumbersValid(t *testing.T) {
	table := []struct {
		name     string
		surahId  int
		startAya int
		endAya   int
		expected bool
	}{
		{name: "whole surah", surahId: 1, startAya: 1, endAya: 7, expected: true},
		{name: "single aya", surahId: 2, startAya: 255, endAya: 255, expected: true},
		{name: "start after end", surahId: 2, startAya: 5, endAya: 1, expected: false},
		{name: "end beyond surah length", surahId: 112, startAya: 1, endAya: 5, expected: false},
		{name: "zero start", surahId: 2, startAya: 0, endAya: 5, expected: false},
		{name: "invalid surah", surahId: 115, startAya: 1, endAya: 1, expected: false},
	}

	for _, v := range table {
		t.Run(v.name, func(t *testing.T) {
			got := IsAyaStartEndNumbersValid(v.surahId, v.startAya, v.endAya)
			if got != v.expected {
				t.Fatalf("expected %v, got %v", v.expected, got)
			}
		})
	}
}
