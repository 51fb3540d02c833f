package progress

import "time"

// MaxMasteryLevel is the highest mastery classification.
const MaxMasteryLevel = 5

// MasteryLevel classifies how well a word is learned on a 0-5 scale.
//
// Four factors are combined: an accuracy step function, a streak-based
// consistency bonus, an experience modifier that discounts small sample
// sizes, and a recency modifier that decays with time since the last
// practice. Level 5 additionally requires 90%+ accuracy and at least five
// attempts, so a short lucky streak can never register as true mastery.
func MasteryLevel(record Record, now time.Time) int {
	if record.TotalAttempts == 0 {
		return 0
	}

	accuracy := record.Accuracy() * 100
	score := (accuracyPoints(accuracy) + consistencyBonus(record.Streak)) *
		experienceModifier(record.TotalAttempts) *
		recencyModifier(record, now)

	switch {
	case score >= 5.5 && accuracy >= 90 && record.TotalAttempts >= 5:
		return 5
	case score >= 4.5:
		return 4
	case score >= 3.5:
		return 3
	case score >= 2.5:
		return 2
	case score >= 1.5:
		return 1
	default:
		return 0
	}
}

// accuracyPoints maps accuracy (0-100) to 0.5-5.0 points.
func accuracyPoints(accuracy float64) float64 {
	switch {
	case accuracy >= 90:
		return 5.0
	case accuracy >= 80:
		return 4.0
	case accuracy >= 70:
		return 3.5
	case accuracy >= 60:
		return 3.0
	case accuracy >= 50:
		return 2.5
	case accuracy >= 40:
		return 2.0
	case accuracy >= 30:
		return 1.5
	case accuracy >= 20:
		return 1.0
	default:
		return 0.5
	}
}

// consistencyBonus rewards a positive streak and penalizes a negative one.
func consistencyBonus(streak int) float64 {
	switch {
	case streak >= 5:
		return 1.0
	case streak >= 3:
		return 0.5
	case streak >= 1:
		return 0.2
	case streak == 0:
		return 0.0
	case streak >= -2:
		return -0.3
	case streak >= -4:
		return -0.6
	default:
		return -1.0
	}
}

// experienceModifier discounts confidence for small sample sizes.
func experienceModifier(totalAttempts int) float64 {
	switch {
	case totalAttempts >= 10:
		return 1.0
	case totalAttempts >= 5:
		return 0.8
	case totalAttempts >= 3:
		return 0.6
	default:
		return 0.4
	}
}

// recencyModifier decays confidence with the number of days since the last
// practice. A word never practiced carries no decay; a record whose stored
// timestamp could not be parsed gets a mild penalty instead.
func recencyModifier(record Record, now time.Time) float64 {
	if record.LastPracticedInvalid {
		return 0.8
	}
	if record.LastPracticed == nil {
		return 1.0
	}

	days := int(now.Sub(*record.LastPracticed).Hours() / 24)
	switch {
	case days <= 1:
		return 1.0
	case days <= 3:
		return 0.95
	case days <= 7:
		return 0.9
	case days <= 14:
		return 0.8
	case days <= 30:
		return 0.7
	default:
		return 0.6
	}
}
