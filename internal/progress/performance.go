package progress

import "github.com/conorfennell/learntrack/internal/domain"

// Star thresholds are inclusive lower bounds, checked from the top down.
var thresholds = []struct {
	min   float64
	stars int
}{
	{0.8, 5},
	{0.6, 4},
	{0.4, 3},
	{0.2, 2},
}

// CalculatePerformance rates a set of items by the fraction completed.
// An empty set rates as 0%.
func CalculatePerformance(items []domain.LearningItem) domain.PerformanceRating {
	completed := 0
	for _, item := range items {
		if item.Completed {
			completed++
		}
	}
	percentage := Fraction(completed, len(items))

	stars := 1
	for _, t := range thresholds {
		if percentage >= t.min {
			stars = t.stars
			break
		}
	}

	return domain.PerformanceRating{
		Stars:      stars,
		Message:    MessageFor(stars),
		Percentage: percentage,
	}
}

// MessageFor returns the short verdict shown next to the stars.
func MessageFor(stars int) string {
	switch stars {
	case 5:
		return "Excellent!"
	case 4:
		return "Good Job!"
	case 3:
		return "Average"
	case 2:
		return "Poor"
	default:
		return "Very Poor"
	}
}

// ColorFor returns the color used for a star count.
func ColorFor(stars int) domain.Color {
	switch stars {
	case 5:
		return domain.ColorGreen
	case 4:
		return domain.ColorBlue
	case 3:
		return domain.ColorOrange
	case 2:
		return domain.ColorRed
	case 1:
		return domain.ColorPurple
	default:
		return domain.ColorGray
	}
}

// EncouragementFor returns the sentence shown under the progress bar.
func EncouragementFor(stars int) string {
	switch stars {
	case 5:
		return "Amazing work! You're a learning superstar! 🌟 Keep up this excellent performance!"
	case 4:
		return "Great job! You're doing really well. Keep pushing forward! 💪"
	case 3:
		return "Good effort! You're making progress. Try to complete a bit more tomorrow! 📚"
	case 2:
		return "You can do better! Let's work on completing more tasks tomorrow! 💪"
	case 1:
		return "Don't worry! Tomorrow is a new day. Let's try our best! 🌅"
	default:
		return "Every day is a chance to improve! Keep learning! 📖"
	}
}
