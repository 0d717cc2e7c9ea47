package models

// Student rows carry the defaults assigned at registration time:
// course list joined into a single string, random attendance and gpa.
type Student struct {
	ID         string  `gorm:"primaryKey;size:50" json:"id"`
	Username   string  `gorm:"size:100;not null" json:"username"`
	Email      string  `gorm:"size:100;not null;unique" json:"email"`
	Password   string  `gorm:"size:255;not null" json:"password"`
	Course     string  `gorm:"size:255;default:General" json:"course"`
	Status     string  `gorm:"size:50;default:Active" json:"status"`
	Attendance int     `gorm:"default:0" json:"attendance"`
	GPA        float64 `gorm:"type:decimal(3,1);default:0.0" json:"gpa"`
}

type Admin struct {
	ID       string `gorm:"primaryKey;size:50" json:"id"`
	Username string `gorm:"size:100;not null" json:"username"`
	Email    string `gorm:"size:100;not null;unique" json:"email"`
	Password string `gorm:"size:255;not null" json:"password"`
}

type Course struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null;unique" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

// Assignment.CourseName is free text, deliberately not a foreign key
// into courses.
type Assignment struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	CourseName  string `gorm:"size:100;not null" json:"courseName"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	DueDate     string `gorm:"type:date" json:"dueDate"`
}
