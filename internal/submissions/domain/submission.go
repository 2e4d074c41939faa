package domain

import "time"

type Submission struct {
	ID        string
	FormID    string
	Data      map[string]any
	Origin    string
	IPAddress string
	CreatedAt time.Time
}
