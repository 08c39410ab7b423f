package lessonservice

// Lesson модель занятия из каталога
type Lesson struct {
	ID              int64  `json:"id"`
	MentorID        int64  `json:"mentorId"`
	Title           string `json:"title"`
	DurationMinutes int    `json:"durationMinutes"` // длительность занятия по умолчанию
	Price           int64  `json:"price"`
	IsPublished     bool   `json:"isPublished"`
}

// ErrorResponse модель ошибки от каталога занятий
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
