package models

import "time"

// PromotionRecord is an append-only audit entry created once per student
// per promote/graduate operation. Records are immutable once written.
type PromotionRecord struct {
	ID         int64           `json:"id" db:"id"`
	StudentID  int64           `json:"studentId" db:"student_id"`
	FromForm   Form            `json:"fromForm" db:"from_form"`
	ToForm     Form            `json:"toForm" db:"to_form"`
	FromStream Stream          `json:"fromStream" db:"from_stream"`
	ToStream   Stream          `json:"toStream" db:"to_stream"`
	Action     PromotionAction `json:"action" db:"action"`
	CreatedAt  time.Time       `json:"createdAt" db:"created_at"`
}
