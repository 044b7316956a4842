package lead

import "time"

type Lead struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	QuizID    string    `json:"quiz_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Subscriber struct {
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
