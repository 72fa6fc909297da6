// Package seed provides the built-in sample items and lesson content.
package seed

import "github.com/conorfennell/learntrack/internal/domain"

// Items returns the four sample items used when no item files are configured.
// Each call returns a fresh slice.
func Items() []domain.LearningItem {
	return []domain.LearningItem{
		{
			ID:       "1",
			Title:    "English Words - Lesson 1",
			Category: domain.CategoryEnglishWords,
			TimeSlot: domain.SlotMorning,
		},
		{
			ID:       "2",
			Title:    "Surah Al-Fatiha",
			Category: domain.CategorySurahs,
			TimeSlot: domain.SlotAfternoon,
		},
		{
			ID:       "3",
			Title:    "Arabic Words - Colors",
			Category: domain.CategoryArabicWords,
			TimeSlot: domain.SlotEvening,
		},
		{
			ID:       "4",
			Title:    "Poem - Nature",
			Category: domain.CategoryPoems,
			TimeSlot: domain.SlotNight,
		},
	}
}

// Word is a vocabulary entry with its meaning.
type Word struct {
	Word    string
	Meaning string
}

// Content is the lesson material shown for a category.
type Content struct {
	Heading string
	Words   []Word
	Lines   []string
}

// ContentFor returns the lesson material for a category.
func ContentFor(c domain.Category) Content {
	switch c {
	case domain.CategoryEnglishWords:
		return Content{
			Heading: "Today's English Words:",
			Words: []Word{
				{"Apple", "A round fruit with red or green skin"},
				{"Beautiful", "Pleasing to look at"},
				{"Courage", "The ability to face danger or difficulty"},
				{"Dream", "A series of thoughts during sleep"},
			},
		}
	case domain.CategorySurahs:
		return Content{
			Heading: "Surah Al-Fatiha:",
			Lines: []string{
				"بِسْمِ اللَّهِ الرَّحْمَٰنِ الرَّحِيمِ",
				"In the name of Allah, the Entirely Merciful, the Especially Merciful",
			},
		}
	case domain.CategoryArabicWords:
		return Content{
			Heading: "Arabic Colors:",
			Words: []Word{
				{"أحمر (Ahmar)", "Red"},
				{"أزرق (Azraq)", "Blue"},
				{"أخضر (Akhdar)", "Green"},
				{"أصفر (Asfar)", "Yellow"},
			},
		}
	case domain.CategoryPoems:
		return Content{
			Heading: "Nature Poem:",
			Lines: []string{
				"The sun is shining bright today,",
				"The flowers bloom in every way.",
				"Birds are singing in the trees,",
				"Dancing gently in the breeze.",
			},
		}
	}
	return Content{}
}
