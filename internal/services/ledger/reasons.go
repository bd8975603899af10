package ledger

import "math/rand"

// rejectionReasons — фиксированная таблица причин отказа.
// Причина выбирается равновероятно при каждом отклике.
var rejectionReasons = []string{
	"You're overqualified. We need someone with exactly 47 years of experience, not 46.",
	"We went with an internal candidate (the CEO's nephew who just graduated high school).",
	"Your response time to our 2:47 AM email was inadequate (you took 8 minutes).",
	"We found a candidate willing to work for exposure instead of money.",
	"You lack the required certification in Telepathy and Mind Reading.",
	"We decided to leave the position vacant and distribute the work to existing staff.",
	"Your cover letter was only 4,997 words. We required exactly 5,000.",
	"We needed someone with 15 years of experience in technology invented 3 years ago.",
	"You don't own the exact make and model of vehicle specified in the job posting.",
	"We're looking for someone who can dedicate 25 hours per day to this role.",
	"Your PhD is from the wrong university (we needed someone from Hogwarts).",
	"We found someone willing to pay US for the opportunity to work here.",
	"You failed to demonstrate your ability to work without sleep, food, or compensation.",
	"Your references didn't include at least 3 Fortune 500 CEOs and a sitting president.",
	"We decided to use AI instead (it also doesn't need lunch breaks).",
}

// randomRejectionReason возвращает случайную причину отказа.
func randomRejectionReason() string {
	return rejectionReasons[rand.Intn(len(rejectionReasons))]
}
